package external

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

// mockSpellAPI is a mock implementation of SpellAPI for testing
type mockSpellAPI struct {
	mock.Mock
}

func (m *mockSpellAPI) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	refs, _ := args.Get(0).([]*entities.ReferenceItem)
	return refs, args.Error(1)
}

func (m *mockSpellAPI) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	spell, _ := args.Get(0).(*entities.Spell)
	return spell, args.Error(1)
}

func TestGetSpell(t *testing.T) {
	api := new(mockSpellAPI)
	api.On("GetSpell", "fireball").Return(&entities.Spell{
		Key:           "fireball",
		Name:          "Fireball",
		SpellLevel:    3,
		CastingTime:   "1 action",
		Range:         "150 feet",
		Duration:      "Instantaneous",
		Concentration: false,
		Ritual:        false,
	}, nil)

	c := NewWithAPI(api, nil)
	spell, err := c.GetSpell(context.Background(), "fireball")

	require.NoError(t, err)
	assert.Equal(t, "fireball", spell.Key)
	assert.Equal(t, "Fireball", spell.Name)
	assert.Equal(t, int32(3), spell.Level)
	assert.Equal(t, "150 feet", spell.Range)
	assert.Contains(t, spell.Description, "Level 3")
	api.AssertExpectations(t)
}

func TestGetSpell_EmptyKey(t *testing.T) {
	c := NewWithAPI(new(mockSpellAPI), nil)
	_, err := c.GetSpell(context.Background(), "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGetSpell_APIFailureIsUnavailable(t *testing.T) {
	api := new(mockSpellAPI)
	api.On("GetSpell", "wish").Return(nil, stderrors.New("502 bad gateway"))

	c := NewWithAPI(api, nil)
	_, err := c.GetSpell(context.Background(), "wish")

	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestListSpells_LoadsDetails(t *testing.T) {
	api := new(mockSpellAPI)
	level := 1
	api.On("ListSpells", &dnd5e.ListSpellsInput{Level: &level, Class: "wizard"}).
		Return([]*entities.ReferenceItem{
			{Key: "magic-missile", Name: "Magic Missile"},
			{Key: "shield", Name: "Shield"},
		}, nil)
	api.On("GetSpell", "magic-missile").Return(&entities.Spell{Key: "magic-missile", Name: "Magic Missile", SpellLevel: 1}, nil)
	api.On("GetSpell", "shield").Return(&entities.Spell{Key: "shield", Name: "Shield", SpellLevel: 1}, nil)

	c := NewWithAPI(api, &Config{Concurrency: 2})
	lvl := int32(1)
	spells, err := c.ListSpells(context.Background(), &ListSpellsInput{Level: &lvl, ClassID: "wizard"})

	require.NoError(t, err)
	require.Len(t, spells, 2)
	assert.Equal(t, "magic-missile", spells[0].Key)
	assert.Equal(t, "shield", spells[1].Key)
	api.AssertExpectations(t)
}

func TestListSpells_DetailFailure(t *testing.T) {
	api := new(mockSpellAPI)
	api.On("ListSpells", (*dnd5e.ListSpellsInput)(nil)).
		Return([]*entities.ReferenceItem{{Key: "light", Name: "Light"}}, nil)
	api.On("GetSpell", "light").Return(nil, stderrors.New("timeout"))

	c := NewWithAPI(api, nil)
	_, err := c.ListSpells(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestBuildSpellHeader(t *testing.T) {
	assert.Equal(t, "Cantrip Unknown School spell", buildSpellHeader(&entities.Spell{SpellLevel: 0}))
	assert.Equal(t, "Level 9 Unknown School spell", buildSpellHeader(&entities.Spell{SpellLevel: 9}))
}
