package devops

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

var (
	mu     sync.Mutex
	params = map[string]string{}
)

// LoadParameter fetches a decrypted SSM parameter. Values are cached for the
// life of the process.
func LoadParameter(ctx context.Context, name string) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := params[name]; ok {
		return v, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get parameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}

	params[name] = *out.Parameter.Value
	return params[name], nil
}
