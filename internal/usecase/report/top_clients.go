package report

import "context"

const defaultTopClientsLimit = 20

type TopClients struct {
	analytics Analytics
}

func NewTopClients(analytics Analytics) *TopClients {
	return &TopClients{analytics: analytics}
}

// Execute rankea clientes por cantidad de reservas confirmadas o
// finalizadas dentro del rango.
func (uc *TopClients) Execute(
	ctx context.Context,
	f Filter,
	limit int,
) ([]TopClientRow, error) {

	if err := validateFilter(f); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultTopClientsLimit
	}

	return uc.analytics.TopClients(ctx, f, limit)
}
