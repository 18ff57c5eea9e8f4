/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"context"
	"fmt"

	"github.com/orien/simplecdk/internal/logging"
	"go.uber.org/zap"
)

// EnvironmentSource supplies default account and region values, for example
// from the active AWS credentials
type EnvironmentSource interface {
	DefaultAccount(ctx context.Context) (string, error)
	DefaultRegion(ctx context.Context) (string, error)
}

// SetEnvFromSource returns a processor that fills an empty account and region
// from src. The source is only consulted for values that are missing.
func SetEnvFromSource(ctx context.Context, src EnvironmentSource) Processor {
	return func(opts Options) (Options, error) {
		result := opts.Clone()
		env := &result.Environment

		if env.Account == "" {
			account, err := src.DefaultAccount(ctx)
			if err != nil {
				return Options{}, fmt.Errorf("failed to determine default account: %w", err)
			}
			env.Account = account
		}

		if env.Region == "" {
			region, err := src.DefaultRegion(ctx)
			if err != nil {
				return Options{}, fmt.Errorf("failed to determine default region: %w", err)
			}
			env.Region = region
		}

		logging.Logger().Debug("environment set from source",
			zap.String("account", env.Account),
			zap.String("region", env.Region))
		return result, nil
	}
}
