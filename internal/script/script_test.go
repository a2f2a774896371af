package script

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoScriptShape(t *testing.T) {
	demo := Demo()
	require.Equal(t, 26, demo.Len())

	first, ok := demo.At(0)
	require.True(t, ok)
	assert.Equal(t, TypeText, first.Type)
	assert.True(t, first.IsBot)
	assert.Equal(t, 800*time.Millisecond, first.Wait())

	last, ok := demo.At(demo.Len() - 1)
	require.True(t, ok)
	assert.Equal(t, TypeCTA, last.Type)
	assert.Equal(t, "Continuar no WhatsApp", last.Content)
}

func TestDemoScriptReferencesKnownServices(t *testing.T) {
	for i, step := range Demo().Steps() {
		if step.Type != TypeService {
			continue
		}
		_, ok := LookupService(step.Service)
		assert.True(t, ok, "step %d references %q", i, step.Service)
	}
}

func TestStepWaitDefaultsToOneSecond(t *testing.T) {
	assert.Equal(t, DefaultDelay, Step{Type: TypeText}.Wait())
	assert.Equal(t, 250*time.Millisecond, Step{Type: TypeText, Delay: 250 * time.Millisecond}.Wait())
}

func TestNewRejectsInvalidScripts(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = New([]Step{{Type: "video"}})
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = New([]Step{{Type: TypeService, Service: "crm"}})
	assert.Error(t, err)

	_, err = New([]Step{{Type: TypeText, Delay: -time.Second}})
	assert.Error(t, err)
}

func TestScriptIsImmutable(t *testing.T) {
	opts := []string{"a", "b"}
	s, err := New([]Step{{Type: TypeOptions, Options: opts}})
	require.NoError(t, err)

	opts[0] = "changed"
	step, _ := s.At(0)
	assert.Equal(t, "a", step.Options[0])

	step.Options[1] = "mutated"
	again, _ := s.At(0)
	assert.Equal(t, "b", again.Options[1])
}

func TestAtOutOfRange(t *testing.T) {
	_, ok := Demo().At(-1)
	assert.False(t, ok)
	_, ok = Demo().At(Demo().Len())
	assert.False(t, ok)

	var nilScript *Script
	assert.Equal(t, 0, nilScript.Len())
}

func TestServicesCatalogue(t *testing.T) {
	services := Services()
	require.Len(t, services, 6)

	all, ok := LookupService(ServiceAll)
	require.True(t, ok)
	assert.Equal(t, float64(3497), all.Price)
	assert.Equal(t, "Pacote Completo", all.Name)

	services[0].Features[0] = "changed"
	chatbot, _ := LookupService(ServiceChatbot)
	assert.Equal(t, "Responde perguntas automaticamente", chatbot.Features[0])
}

func TestTotalDuration(t *testing.T) {
	s := MustNew([]Step{
		{Type: TypeText, Delay: 500 * time.Millisecond},
		{Type: TypeText},
	})
	assert.Equal(t, 1500*time.Millisecond, s.TotalDuration())
}
