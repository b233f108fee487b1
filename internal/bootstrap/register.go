package bootstrap

import (
	"github.com/ariel055132/stockinfo/internal/infrastructure/csvfile"
	"github.com/ariel055132/stockinfo/internal/infrastructure/finmind"
	stockUc "github.com/ariel055132/stockinfo/internal/usecase/stock"
)

func (b *Bootstrap) registerClient() {
	b.Client = finmind.NewClient(b.Config.FinMind, b.Logger)
}

func (b *Bootstrap) registerUsecase() {
	b.Usecase = stockUc.NewUsecase(b.Client, b.Logger)
}

func (b *Bootstrap) registerWriter() {
	b.Writer = csvfile.NewWriter(b.Logger)
}
