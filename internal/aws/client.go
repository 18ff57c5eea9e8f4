/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Config holds configuration for creating AWS clients
type Config struct {
	Region  string
	Profile string
}

// EnvironmentSource resolves the default account and region from the active
// AWS credentials
type EnvironmentSource struct {
	client STSClient
	region string

	once    sync.Once
	account string
	err     error
}

// NewEnvironmentSource loads the shared AWS configuration and creates a source backed by STS
func NewEnvironmentSource(ctx context.Context, cfg Config) (*EnvironmentSource, error) {
	awsCfg, err := loadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewEnvironmentSourceWithClient(sts.NewFromConfig(awsCfg), awsCfg.Region), nil
}

// NewEnvironmentSourceWithClient creates a source with a custom client (for testing)
func NewEnvironmentSourceWithClient(client STSClient, region string) *EnvironmentSource {
	return &EnvironmentSource{
		client: client,
		region: region,
	}
}

// DefaultAccount returns the account of the caller identity. The lookup is
// made once per source.
func (s *EnvironmentSource) DefaultAccount(ctx context.Context) (string, error) {
	s.once.Do(func() {
		out, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			s.err = fmt.Errorf("failed to get caller identity: %w", err)
			return
		}
		s.account = aws.ToString(out.Account)
	})
	return s.account, s.err
}

// DefaultRegion returns the region of the shared AWS configuration
func (s *EnvironmentSource) DefaultRegion(ctx context.Context) (string, error) {
	if s.region == "" {
		return "", fmt.Errorf("no AWS region configured")
	}
	return s.region, nil
}
