// internal/agents/invoker.go
package agents

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"

	"github.com/therandomindian/investment-agent-system/internal/common/errors"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
	"github.com/therandomindian/investment-agent-system/internal/common/metrics"
)

// Invoker sends a query to a specialist agent and returns its complete
// answer. Either the full concatenation of the streamed response is returned
// or an error; no partial result is ever returned silently.
type Invoker interface {
	Invoke(ctx context.Context, ref Ref, sessionID, query string) (string, error)
}

// runtimeAPI is the slice of the Bedrock agent runtime client we use.
type runtimeAPI interface {
	InvokeAgent(ctx context.Context, params *bedrockagentruntime.InvokeAgentInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.InvokeAgentOutput, error)
}

// chunkStream is the slice of the SDK event stream consumed during chunk
// reassembly. The SDK's *InvokeAgentEventStream satisfies it.
type chunkStream interface {
	Events() <-chan types.ResponseStream
	Err() error
	Close() error
}

// BedrockInvoker invokes agents through the Bedrock agent runtime. It is a
// read-only singleton built once at process start.
type BedrockInvoker struct {
	client runtimeAPI
	logger logger.Logger
}

func NewBedrockInvoker(client runtimeAPI, log logger.Logger) *BedrockInvoker {
	return &BedrockInvoker{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "bedrock-invoker"}),
	}
}

// NewRuntimeClient builds the shared Bedrock agent runtime client.
func NewRuntimeClient(ctx context.Context, region string) (*bedrockagentruntime.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return bedrockagentruntime.NewFromConfig(cfg), nil
}

// Invoke opens one logical request to the specialist and reassembles its
// streamed answer. Inference can be slow; the caller bounds the call through
// ctx.
func (b *BedrockInvoker) Invoke(ctx context.Context, ref Ref, sessionID, query string) (string, error) {
	start := time.Now()

	out, err := b.client.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(ref.AgentID),
		AgentAliasId: aws.String(ref.AliasID),
		SessionId:    aws.String(sessionID),
		InputText:    aws.String(query),
	})
	if err != nil {
		metrics.AgentInvocations.WithLabelValues(ref.AgentID, "error").Inc()
		return "", errors.NewUpstreamError("bedrock-agent-runtime", err)
	}

	stream := out.GetStream()
	defer stream.Close()

	completion, err := reassemble(ctx, stream)
	if err != nil {
		metrics.AgentInvocations.WithLabelValues(ref.AgentID, "error").Inc()
		b.logger.WithError(err).Error("agent stream failed", map[string]interface{}{
			"agentId":   ref.AgentID,
			"sessionId": sessionID,
		})
		return "", errors.NewUpstreamError("bedrock-agent-runtime", err)
	}

	metrics.AgentInvocations.WithLabelValues(ref.AgentID, "success").Inc()
	metrics.AgentInvocationDuration.WithLabelValues(ref.AgentID).Observe(time.Since(start).Seconds())
	b.logger.Debug("agent invocation complete", map[string]interface{}{
		"agentId":    ref.AgentID,
		"sessionId":  sessionID,
		"durationMs": time.Since(start).Milliseconds(),
	})
	return completion, nil
}

// reassemble concatenates streamed chunks, decoded as text, in delivery
// order. The stream is consumed to completion or abandoned as a unit: a
// stream error or an expired ctx discards everything collected so far.
func reassemble(ctx context.Context, stream chunkStream) (string, error) {
	var sb strings.Builder
	events := stream.Events()
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case event, ok := <-events:
			if !ok {
				if err := stream.Err(); err != nil {
					return "", err
				}
				return sb.String(), nil
			}
			if chunk, isChunk := event.(*types.ResponseStreamMemberChunk); isChunk {
				sb.Write(chunk.Value.Bytes)
			}
		}
	}
}
