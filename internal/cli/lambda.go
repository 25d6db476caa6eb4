package cli

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/spf13/cobra"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/container"
	"github.com/HACKERPRO961/fen-oyunu/internal/router"
)

func newLambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve API Gateway proxy events on AWS Lambda",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			c := container.New(context.Background(), cfg)
			adapter := chiadapter.New(router.New(c.RouterConfig()))

			config.Logger.Info("starting lambda handler")
			lambda.Start(adapter.ProxyWithContext)
		},
	}
}
