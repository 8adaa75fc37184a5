// internal/event/types.go
package event

const (
	Resized EventType = "Resized" // поверхность изменила размер, Data — Size
	Paused  EventType = "Paused"
	Resumed EventType = "Resumed"
)

// Size is the payload of Resized.
type Size struct {
	Width, Height int
}
