package cats

import "context"

// Source es la API remota de gatos (read-all / create-one).
type Source interface {
	List(ctx context.Context) ([]Cat, error)
	Create(ctx context.Context, in CreateInput) (Cat, error)
}
