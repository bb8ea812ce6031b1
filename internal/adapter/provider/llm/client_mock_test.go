package llm

import (
	"context"
	"sync"
)

var _ Client = &clientMock{}

type clientMock struct {
	GenerateFunc func(ctx context.Context, p Prompt, model string) (string, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			P     Prompt
			Model string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *clientMock) Generate(ctx context.Context, p Prompt, model string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("clientMock.GenerateFunc: method is nil but Client.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		P     Prompt
		Model string
	}{Ctx: ctx, P: p, Model: model}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, p, model)
}

func (mock *clientMock) GenerateCalls() []struct {
	Ctx   context.Context
	P     Prompt
	Model string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
