package typist_test

import (
	"testing"

	"github.com/aretw0/typist"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/middleware"
	"github.com/aretw0/typist/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperCaser struct{}

func (upperCaser) Name() string { return "shout" }

func (upperCaser) Next(ev domain.Event, _ ports.Dispatcher) domain.Event {
	if r, ok := ev.Payload.(domain.RenderedEvent); ok {
		r.Body = r.Body + "!"
		ev.Payload = r
	}
	return ev
}

func TestEngine_Defaults(t *testing.T) {
	eng := typist.New()
	assert.Equal(t, []string{middleware.ActionName}, eng.Stages())

	out := eng.Process(domain.NewRendered(0, 7, "hello"))
	require.Len(t, out, 1)
	assert.Equal(t, domain.NewTextInject(0, "hello", domain.TextInjectModeDefault), out[0])
}

func TestEngine_StagesRunBeforeAction(t *testing.T) {
	eng := typist.New(typist.WithMiddlewares(upperCaser{}), typist.WithName("test"))
	assert.Equal(t, []string{"shout", "action"}, eng.Stages())

	out := eng.Process(domain.NewRendered(0, 1, "hi"))
	require.Len(t, out, 1)
	assert.Equal(t, "hi!", out[0].Payload.(domain.TextInjectRequest).Text)
}

func TestEngine_CharUnit(t *testing.T) {
	trigger := ":\U0001F1EB\U0001F1F7" // ":" + flag

	byCodePoint := typist.New().Process(domain.NewTriggerCompensation(0, trigger, ""))
	byGrapheme := typist.New(typist.WithCharUnit(middleware.CharUnitGrapheme)).Process(domain.NewTriggerCompensation(0, trigger, ""))

	assert.Len(t, byCodePoint[0].Payload.(domain.KeySequenceInjectRequest).Keys, 3)
	assert.Len(t, byGrapheme[0].Payload.(domain.KeySequenceInjectRequest).Keys, 2)
}

func TestEngine_ProviderOverride(t *testing.T) {
	provider := ports.MatchInfoProviderFunc(func(id int) (domain.TextInjectMode, bool) {
		return domain.TextInjectModeKeys, id == 5
	})
	eng := typist.New(typist.WithProvider(provider))

	out := eng.Process(domain.NewRendered(0, 5, "typed"))
	assert.Equal(t, domain.TextInjectModeKeys, out[0].Payload.(domain.TextInjectRequest).ForceMode)

	out = eng.Process(domain.NewRendered(0, 6, "default"))
	assert.Equal(t, domain.TextInjectModeDefault, out[0].Payload.(domain.TextInjectRequest).ForceMode)
}
