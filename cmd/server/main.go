// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/therandomindian/investment-agent-system/internal/actions"
	"github.com/therandomindian/investment-agent-system/internal/actions/portfolio"
	"github.com/therandomindian/investment-agent-system/internal/actions/routing"
	"github.com/therandomindian/investment-agent-system/internal/actions/subscription"
	"github.com/therandomindian/investment-agent-system/internal/agents"
	"github.com/therandomindian/investment-agent-system/internal/common/config"
	"github.com/therandomindian/investment-agent-system/internal/common/httpclient"
	"github.com/therandomindian/investment-agent-system/internal/common/logger"
	"github.com/therandomindian/investment-agent-system/internal/common/observability"
	"github.com/therandomindian/investment-agent-system/internal/gateway"
	"github.com/therandomindian/investment-agent-system/internal/orchestrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting investment agent service...",
		zap.String("environment", cfg.App.Environment),
		zap.String("strategy", cfg.Orchestrator.Strategy),
	)

	if cfg.Orchestrator.AliasIsPlaceholder() {
		zapLog.Warn("orchestrator agent alias is still a placeholder; queries will be refused until deployment is finalized")
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	runtimeClient, err := agents.NewRuntimeClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("failed to build agent runtime client", zap.Error(err))
	}
	invoker := agents.NewBedrockInvoker(runtimeClient, log)

	strategy, err := orchestrator.FromConfig(cfg.Orchestrator, invoker, log)
	if err != nil {
		zapLog.Fatal("failed to build orchestrator strategy", zap.Error(err))
	}

	// Shared, read-only HTTP client for the auxiliary APIs. Per-call bounds
	// come from each service's own timeout.
	apiClient := httpclient.NewClient(time.Duration(cfg.Server.RequestTimeout) * time.Second)

	portfolioService := portfolio.NewService(&portfolio.Config{
		BalanceURL: cfg.APIs.Portfolio.BalanceURL,
		Timeout:    time.Duration(cfg.APIs.Portfolio.Timeout) * time.Millisecond,
	}, apiClient, log)

	subscriptionService := subscription.NewService(&subscription.Config{
		BaseURL:          cfg.APIs.Permissions.BaseURL,
		Timeout:          time.Duration(cfg.APIs.Permissions.Timeout) * time.Millisecond,
		DefaultAgentName: cfg.Specialists.DefaultSubscription,
	}, apiClient, log)

	adapter := actions.NewAdapter(log,
		portfolio.NewHandler(portfolioService, log),
		subscription.NewCheckHandler(subscriptionService, log),
		subscription.NewSubscribeHandler(subscriptionService, log),
		routing.NewHandler(routing.GeneralAdviceFunctionName, agents.Ref{
			AgentID: cfg.Specialists.GeneralAdvice.AgentID,
			AliasID: cfg.Specialists.GeneralAdvice.AgentAliasID,
		}, invoker, log),
		routing.NewHandler(routing.PersonalizedInfoFunctionName, agents.Ref{
			AgentID: cfg.Specialists.PersonalizedInfo.AgentID,
			AliasID: cfg.Specialists.PersonalizedInfo.AgentAliasID,
		}, invoker, log),
	)
	adapter.SetDirectInvocationTarget(routing.GeneralAdviceFunctionName)

	zapLog.Info("action registry ready", zap.Strings("functions", adapter.Functions()))

	handler := gateway.NewHandler(
		strategy,
		adapter,
		cfg.Orchestrator,
		time.Duration(cfg.Server.RequestTimeout)*time.Second,
		obs,
		log,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: gateway.NewRouter(handler, cfg.Logging.Level),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
