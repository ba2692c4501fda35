package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/goals-api/internal/config"
	"github.com/saulo-duarte/goals-api/internal/container"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	cfg, err := config.Load("")
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	app, err := container.New(context.Background(), &cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build container")
	}

	chiLambda = chiadapter.New(app.Router)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
