package aiclient

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"talentintel/intake-gateway/internal/intake"
)

// transcribeMethod is the speech service RPC. Requests and responses are
// google.protobuf.Struct messages:
//
//	request:  {"samples": [float...], "sample_rate": int}
//	response: {"text": string, "language": string}
const transcribeMethod = "/aiservice.AIService/TranscribeSamples"

// GRPCTranscriber sends audio batches to the AI speech service over gRPC.
type GRPCTranscriber struct {
	conn       *grpc.ClientConn
	sampleRate int
	logger     *logrus.Logger
}

// NewGRPCTranscriber creates a client for the speech service at serverAddr.
// The connection is established lazily on the first call.
func NewGRPCTranscriber(serverAddr string, sampleRate int, logger *logrus.Logger, opts ...grpc.DialOption) (*GRPCTranscriber, error) {
	if serverAddr == "" {
		return nil, ErrNotConfigured
	}
	logger.WithField("addr", serverAddr).Info("Connecting to AI gRPC server")

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(serverAddr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AI gRPC server: %w", err)
	}
	return &GRPCTranscriber{conn: conn, sampleRate: sampleRate, logger: logger}, nil
}

// Transcribe implements intake.Transcriber.
func (t *GRPCTranscriber) Transcribe(ctx context.Context, samples []float32) (intake.Transcription, error) {
	values := make([]*structpb.Value, len(samples))
	for i, s := range samples {
		values[i] = structpb.NewNumberValue(float64(s))
	}
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"samples":     structpb.NewListValue(&structpb.ListValue{Values: values}),
		"sample_rate": structpb.NewNumberValue(float64(t.sampleRate)),
	}}

	resp := &structpb.Struct{}
	if err := t.conn.Invoke(ctx, transcribeMethod, req, resp); err != nil {
		return intake.Transcription{}, fmt.Errorf("TranscribeSamples RPC: %w", err)
	}
	return intake.Transcription{
		Text:     resp.GetFields()["text"].GetStringValue(),
		Language: resp.GetFields()["language"].GetStringValue(),
	}, nil
}

// Close closes the gRPC connection to the AI service.
func (t *GRPCTranscriber) Close() error {
	if t.conn != nil {
		t.logger.Info("Closing connection to AI gRPC server")
		return t.conn.Close()
	}
	return nil
}
