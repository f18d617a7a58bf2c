package opensearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Healthcheck returns a readiness check calling the cluster info endpoint.
// Error responses count as failures. A positive timeout bounds each call.
func Healthcheck(client *opensearch.Client, timeout time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		resp, err := client.Info(
			client.Info.WithContext(ctx),
			client.Info.WithErrorTrace(),
		)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer resp.Body.Close()
		if resp.IsError() {
			return errors.Join(ErrHealthcheckFailed, fmt.Errorf("status %d", resp.StatusCode))
		}
		return nil
	}
}
