package airmac

type Config struct {
	JSON bool
}
