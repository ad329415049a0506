package modelsvc

import (
	"context"
	"fmt"

	pb "github.com/benchgen-ml/benchgen/go-sampler/gen/samplerpc"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/committee"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/ranking"
	"github.com/benchgen-ml/benchgen/go-sampler/internal/vocab"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// StepInput is one slot's partial sequence fed to the model for one
// prediction round.
type StepInput struct {
	InputIDs        []vocab.Token
	InputMask       []int32
	TargetPositions []int
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the Python model service, which fronts
// the tokenizer, inference backend, feature extractor, and committee members.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SamplerServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the model service gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSamplerServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SamplerServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region tokenize
// Tokenize converts source text into a token sequence.
func (c *Client) Tokenize(ctx context.Context, text string) ([]vocab.Token, error) {
	resp, err := c.client.Tokenize(ctx, &pb.TokenizeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("tokenize rpc: %w", err)
	}
	return resp.Ids, nil
}

// Detokenize converts a token sequence back into source text, skipping pad
// tokens when ignorePad is set.
func (c *Client) Detokenize(ctx context.Context, ids []vocab.Token, ignorePad bool) (string, error) {
	resp, err := c.client.Detokenize(ctx, &pb.DetokenizeRequest{
		Ids:       ids,
		IgnorePad: ignorePad,
	})
	if err != nil {
		return "", fmt.Errorf("detokenize rpc: %w", err)
	}
	return resp.Text, nil
}

// #endregion tokenize

// #region vocabulary
// Vocabulary fetches the reserved token IDs of the service's tokenizer.
func (c *Client) Vocabulary(ctx context.Context) (vocab.Special, error) {
	resp, err := c.client.Vocabulary(ctx, &pb.VocabularyRequest{})
	if err != nil {
		return vocab.Special{}, fmt.Errorf("vocabulary rpc: %w", err)
	}
	return vocab.Special{
		Pad:       resp.Pad,
		Mask:      resp.Mask,
		Hole:      resp.Hole,
		EndHole:   resp.EndHole,
		Start:     resp.Start,
		End:       resp.End,
		VocabSize: int(resp.VocabSize),
	}, nil
}

// #endregion vocabulary

// #region predict
// Predict sends one batch of partial sequences and returns, per slot, one
// predicted token per open target position.
func (c *Client) Predict(ctx context.Context, inputs []StepInput) ([][]vocab.Token, error) {
	req := &pb.PredictRequest{
		Sequences: make([]*pb.PartialSequence, len(inputs)),
	}
	for i, in := range inputs {
		positions := make([]int32, len(in.TargetPositions))
		for j, p := range in.TargetPositions {
			positions[j] = int32(p)
		}
		req.Sequences[i] = &pb.PartialSequence{
			InputIds:        in.InputIDs,
			InputMask:       in.InputMask,
			TargetPositions: positions,
		}
	}

	resp, err := c.client.Predict(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("predict rpc: %w", err)
	}
	if len(resp.Predictions) != len(inputs) {
		return nil, fmt.Errorf("predict rpc: %d prediction rows for %d inputs",
			len(resp.Predictions), len(inputs))
	}

	out := make([][]vocab.Token, len(resp.Predictions))
	for i, p := range resp.Predictions {
		out[i] = p.PredictedIds
	}
	return out, nil
}

// #endregion predict

// #region extract-features
// ExtractFeatures runs the external feature extractor on source text.
// A nil map with nil error means the source is not extractable; the caller
// skips the candidate.
func (c *Client) ExtractFeatures(ctx context.Context, source, featureSpace string) (ranking.FeatureVector, error) {
	resp, err := c.client.ExtractFeatures(ctx, &pb.ExtractFeaturesRequest{
		Source:       source,
		FeatureSpace: featureSpace,
	})
	if err != nil {
		return nil, fmt.Errorf("extract features rpc: %w", err)
	}
	if !resp.Ok {
		return nil, nil
	}
	return ranking.FeatureVector(resp.Features), nil
}

// #endregion extract-features

// #region committee-vote
// CommitteeVote asks every committee member to label one input.
func (c *Client) CommitteeVote(ctx context.Context, sampleID string, features []float64) (committee.Vote, error) {
	resp, err := c.client.CommitteeVote(ctx, &pb.CommitteeVoteRequest{
		SampleId:      sampleID,
		InputFeatures: features,
	})
	if err != nil {
		return nil, fmt.Errorf("committee vote rpc: %w", err)
	}
	vote := make(committee.Vote, len(resp.MemberLabels))
	for member, label := range resp.MemberLabels {
		vote[member] = committee.Label(label)
	}
	return vote, nil
}

// #endregion committee-vote
