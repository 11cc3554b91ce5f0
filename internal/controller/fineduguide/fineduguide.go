package fineduguide

// ControllerV1 implements the v1 HTTP API.
type ControllerV1 struct{}

func NewV1() *ControllerV1 {
	return &ControllerV1{}
}
