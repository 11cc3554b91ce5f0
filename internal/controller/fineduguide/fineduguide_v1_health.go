package fineduguide

import (
	"context"

	v1 "github.com/fineduguide/fineduguide/api/fineduguide/v1"
)

// Health is the liveness endpoint.
func (c *ControllerV1) Health(ctx context.Context, req *v1.HealthReq) (res *v1.HealthRes, err error) {
	return &v1.HealthRes{
		Message: "FinEduGuide API is running",
	}, nil
}
