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
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// ClientFactory creates AWS clients with proper region configuration
type ClientFactory interface {
	// GetCloudFormationOperations returns CloudFormation operations for specified region
	GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error)

	// GetBaseConfig returns the shared AWS configuration
	GetBaseConfig() aws.Config
}

// DefaultClientFactory implements ClientFactory with caching and shared authentication
type DefaultClientFactory struct {
	baseConfig  aws.Config
	clientCache map[string]CloudFormationOperations
	mutex       sync.RWMutex
}

// NewClientFactory creates a client factory with shared authentication
func NewClientFactory(ctx context.Context, cfg Config) (ClientFactory, error) {
	baseConfig, err := loadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewClientFactoryWithConfig(baseConfig), nil
}

// NewClientFactoryWithConfig creates a client factory from an already loaded configuration
func NewClientFactoryWithConfig(baseConfig aws.Config) *DefaultClientFactory {
	return &DefaultClientFactory{
		baseConfig:  baseConfig,
		clientCache: make(map[string]CloudFormationOperations),
	}
}

// GetCloudFormationOperations returns CloudFormation operations for the
// specified region. An empty region uses the region of the base configuration.
func (f *DefaultClientFactory) GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error) {
	if region == "" {
		region = f.baseConfig.Region
	}
	if region == "" {
		return nil, fmt.Errorf("region cannot be empty")
	}

	f.mutex.RLock()
	if ops, exists := f.clientCache[region]; exists {
		f.mutex.RUnlock()
		return ops, nil
	}
	f.mutex.RUnlock()

	regionConfig := f.baseConfig.Copy()
	regionConfig.Region = region

	ops := NewCloudFormationOperationsWithClient(cloudformation.NewFromConfig(regionConfig))

	f.mutex.Lock()
	f.clientCache[region] = ops
	f.mutex.Unlock()

	return ops, nil
}

// GetBaseConfig returns the shared AWS configuration
func (f *DefaultClientFactory) GetBaseConfig() aws.Config {
	return f.baseConfig
}

// loadConfig loads the shared AWS configuration honouring region and profile
func loadConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return awsCfg, nil
}
