// internal/types/types.go
package types

// EntityID идентифицирует сущность, выданную ECS.
type EntityID uint64
