package graphql_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	"github.com/KirkDiggler/rpg-sheet-api/internal/handlers/graphql"
	charactersvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-sheet-api/internal/services/character/mock"
	spellsvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/spell"
	spellmock "github.com/KirkDiggler/rpg-sheet-api/internal/services/spell/mock"
)

const testUserID = auth.UserID("user-123")

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	mockSpell     *spellmock.MockService
	schema        *gql.Schema
	ctx           context.Context
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.mockSpell = spellmock.NewMockService(s.ctrl)
	s.ctx = auth.WithIdentity(context.Background(), auth.Identity{UserID: testUserID})

	schema, err := graphql.NewSchema(&graphql.HandlerConfig{
		CharacterService: s.mockCharacter,
		SpellService:     s.mockSpell,
		DisableTracing:   true,
	})
	s.Require().NoError(err)
	s.schema = schema
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) exec(ctx context.Context, query string, vars map[string]interface{}) *gql.Response {
	return s.schema.Exec(ctx, query, "", vars)
}

func (s *HandlerTestSuite) requireCode(resp *gql.Response, code errors.Code) {
	s.Require().NotEmpty(resp.Errors)
	s.Equal(code.String(), resp.Errors[0].Extensions["code"])
}

func (s *HandlerTestSuite) TestNewSchema_RequiresServices() {
	_, err := graphql.NewSchema(&graphql.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

// The mocks carry no expectations, so reaching a service fails the test.
func (s *HandlerTestSuite) TestUnauthenticated() {
	queries := map[string]string{
		"currentUserCharacters": `{ currentUserCharacters { id } }`,
		"character":             `{ character(id: "c1") { id } }`,
		"spells":                `{ spells { id } }`,
		"spell":                 `{ spell(id: "fireball") { id } }`,
		"toggleInspiration":     `mutation { toggleInspiration(characterId: "c1") { id } }`,
		"updateDeathSaves":      `mutation { updateDeathSaves(characterId: "c1", input: {successes: 1, failures: 0}) { id } }`,
		"toggleSpellSlot":       `mutation { toggleSpellSlot(characterId: "c1", level: 1) { id } }`,
		"prepareSpell":          `mutation { prepareSpell(characterId: "c1", spellId: "fireball") { prepared } }`,
		"unprepareSpell":        `mutation { unprepareSpell(characterId: "c1", spellId: "fireball") { prepared } }`,
	}

	for name, query := range queries {
		s.Run(name, func() {
			resp := s.exec(context.Background(), query, nil)
			s.requireCode(resp, errors.CodeUnauthenticated)
		})
	}
}

func (s *HandlerTestSuite) TestCurrentUserCharacters_NestedSlotsPerParent() {
	name := "an"
	s.mockCharacter.EXPECT().
		ListCharacters(gomock.Any(), &charactersvc.ListCharactersInput{
			UserID: testUserID,
			Filter: &filter.CharacterFilter{Name: &name},
		}).
		Return(&charactersvc.ListCharactersOutput{Characters: []*entities.Character{
			{ID: "c1", Name: "Elandra", Level: 5},
			{ID: "c2", Name: "Tanis", Level: 3},
		}}, nil)
	s.mockCharacter.EXPECT().
		ListSpellSlots(gomock.Any(), &charactersvc.ListSpellSlotsInput{CharacterID: "c1"}).
		Return(&charactersvc.ListSpellSlotsOutput{Slots: []*entities.SpellSlot{
			{ID: "s1", CharacterID: "c1", Level: 1, Total: 4, Used: 1},
			{ID: "s2", CharacterID: "c1", Level: 2, Total: 3, Used: 0},
		}}, nil)
	s.mockCharacter.EXPECT().
		ListSpellSlots(gomock.Any(), &charactersvc.ListSpellSlotsInput{CharacterID: "c2"}).
		Return(&charactersvc.ListSpellSlotsOutput{Slots: []*entities.SpellSlot{}}, nil)

	resp := s.exec(s.ctx, `query($f: CharacterFilter) {
		currentUserCharacters(filter: $f) {
			id
			name
			spellSlots { level total used remaining }
		}
	}`, map[string]interface{}{"f": map[string]interface{}{"name": "an"}})

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"currentUserCharacters": [
		{"id": "c1", "name": "Elandra", "spellSlots": [
			{"level": 1, "total": 4, "used": 1, "remaining": 3},
			{"level": 2, "total": 3, "used": 0, "remaining": 3}
		]},
		{"id": "c2", "name": "Tanis", "spellSlots": []}
	]}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestCharacter_StatsLoadedOnce() {
	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), &charactersvc.GetCharacterInput{UserID: testUserID, CharacterID: "c1"}).
		Return(&charactersvc.GetCharacterOutput{Character: &entities.Character{ID: "c1", Name: "Elandra"}}, nil)
	s.mockCharacter.EXPECT().
		GetStats(gomock.Any(), &charactersvc.GetStatsInput{CharacterID: "c1"}).
		Return(&charactersvc.GetStatsOutput{Stats: &entities.CharacterStats{
			CharacterID: "c1",
			HitPoints:   entities.HitPoints{Current: 20, Max: 27},
			Skills:      entities.SkillProficiencies{Arcana: true},
		}}, nil).
		Times(1)

	resp := s.exec(s.ctx, `{
		character(id: "c1") {
			name
			hitPoints { current max }
			skillProficiencies { characterId arcana stealth }
		}
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"character": {
		"name": "Elandra",
		"hitPoints": {"current": 20, "max": 27},
		"skillProficiencies": {"characterId": "c1", "arcana": true, "stealth": false}
	}}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestCharacter_NotFound() {
	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character not found").WithMeta("character_id", "nope"))

	resp := s.exec(s.ctx, `{ character(id: "nope") { id } }`, nil)

	s.requireCode(resp, errors.CodeNotFound)
	s.Equal("NOT_FOUND: character not found", resp.Errors[0].Message)
}

func (s *HandlerTestSuite) TestInternalErrorsAreOpaque() {
	s.mockSpell.EXPECT().
		ListSpells(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(stderrors.New("pq: relation does not exist"), "failed to list spells"))

	resp := s.exec(s.ctx, `{ spells { id } }`, nil)

	s.requireCode(resp, errors.CodeInternal)
	s.Equal("INTERNAL: internal error", resp.Errors[0].Message)
	s.NotContains(resp.Errors[0].Message, "pq:")
}

func (s *HandlerTestSuite) TestSpells_FilterMapping() {
	ritual := true
	s.mockSpell.EXPECT().
		ListSpells(gomock.Any(), &spellsvc.ListSpellsInput{
			UserID: testUserID,
			Filter: &filter.SpellFilter{Levels: []int32{1, 3}, Ritual: &ritual},
		}).
		Return(&spellsvc.ListSpellsOutput{Spells: []*entities.Spell{
			{ID: "detect-magic", Name: "Detect Magic", Level: 1, Ritual: true},
		}}, nil)

	resp := s.exec(s.ctx, `{ spells(filter: {levels: [1, 3], ritual: true}) { id name ritual } }`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"spells": [{"id": "detect-magic", "name": "Detect Magic", "ritual": true}]}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestToggleInspiration() {
	s.mockCharacter.EXPECT().
		ToggleInspiration(gomock.Any(), &charactersvc.ToggleInspirationInput{UserID: testUserID, CharacterID: "c1"}).
		Return(&charactersvc.ToggleInspirationOutput{
			Character: &entities.Character{ID: "c1", Inspiration: true},
		}, nil)

	resp := s.exec(s.ctx, `mutation { toggleInspiration(characterId: "c1") { id inspiration } }`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"toggleInspiration": {"id": "c1", "inspiration": true}}`, string(resp.Data))
}

// The mutation result already carries the stats, so neither the character
// nor the stats are read again.
func (s *HandlerTestSuite) TestUpdateDeathSaves_UsesReturnedStats() {
	s.mockCharacter.EXPECT().
		UpdateDeathSaves(gomock.Any(), &charactersvc.UpdateDeathSavesInput{
			UserID:      testUserID,
			CharacterID: "c1",
			Successes:   2,
			Failures:    1,
		}).
		Return(&charactersvc.UpdateDeathSavesOutput{Stats: &entities.CharacterStats{
			CharacterID: "c1",
			DeathSaves:  entities.DeathSaves{Successes: 2, Failures: 1},
		}}, nil)

	resp := s.exec(s.ctx, `mutation {
		updateDeathSaves(characterId: "c1", input: {successes: 2, failures: 1}) {
			id
			deathSaves { successes failures }
		}
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"updateDeathSaves": {"id": "c1", "deathSaves": {"successes": 2, "failures": 1}}}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestToggleSpellSlot_DefaultsToExpend() {
	s.mockCharacter.EXPECT().
		ToggleSpellSlot(gomock.Any(), &charactersvc.ToggleSpellSlotInput{
			UserID:      testUserID,
			CharacterID: "c1",
			Level:       1,
			Direction:   charactersvc.SlotDirectionExpend,
		}).
		Return(&charactersvc.ToggleSpellSlotOutput{
			Slot: &entities.SpellSlot{ID: "s1", CharacterID: "c1", Level: 1, Total: 4, Used: 2},
		}, nil)

	resp := s.exec(s.ctx, `mutation { toggleSpellSlot(characterId: "c1", level: 1) { id characterId level total used } }`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"toggleSpellSlot": {"id": "s1", "characterId": "c1", "level": 1, "total": 4, "used": 2}}`,
		string(resp.Data))
}

func (s *HandlerTestSuite) TestToggleSpellSlot_Restore() {
	s.mockCharacter.EXPECT().
		ToggleSpellSlot(gomock.Any(), &charactersvc.ToggleSpellSlotInput{
			UserID:      testUserID,
			CharacterID: "c1",
			Level:       2,
			Direction:   charactersvc.SlotDirectionRestore,
		}).
		Return(&charactersvc.ToggleSpellSlotOutput{
			Slot: &entities.SpellSlot{ID: "s2", CharacterID: "c1", Level: 2, Total: 3, Used: 0},
		}, nil)

	resp := s.exec(s.ctx, `mutation {
		toggleSpellSlot(characterId: "c1", level: 2, direction: RESTORE) { id used remaining }
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"toggleSpellSlot": {"id": "s2", "used": 0, "remaining": 3}}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestToggleSpellSlot_DirectionVariable() {
	s.mockCharacter.EXPECT().
		ToggleSpellSlot(gomock.Any(), &charactersvc.ToggleSpellSlotInput{
			UserID:      testUserID,
			CharacterID: "c1",
			Level:       1,
			Direction:   charactersvc.SlotDirectionRestore,
		}).
		Return(&charactersvc.ToggleSpellSlotOutput{
			Slot: &entities.SpellSlot{ID: "s1", CharacterID: "c1", Level: 1, Total: 2, Used: 1},
		}, nil)

	resp := s.exec(s.ctx, `mutation ($dir: SlotDirection!) {
		toggleSpellSlot(characterId: "c1", level: 1, direction: $dir) { used }
	}`, map[string]interface{}{"dir": "RESTORE"})

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"toggleSpellSlot": {"used": 1}}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestToggleSpellSlot_InvalidState() {
	s.mockCharacter.EXPECT().
		ToggleSpellSlot(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidState("no spell slots remaining").WithMeta("level", 3))

	resp := s.exec(s.ctx, `mutation { toggleSpellSlot(characterId: "c1", level: 3, direction: EXPEND) { used } }`, nil)

	s.requireCode(resp, errors.CodeInvalidState)
	s.Equal("INVALID_STATE: no spell slots remaining", resp.Errors[0].Message)
	s.EqualValues(3, resp.Errors[0].Extensions["level"])
}

func (s *HandlerTestSuite) TestUpdateSkillProficiencies() {
	s.mockCharacter.EXPECT().
		UpdateSkillProficiencies(gomock.Any(), &charactersvc.UpdateSkillProficienciesInput{
			UserID:      testUserID,
			CharacterID: "c1",
			Skills:      entities.SkillProficiencies{Stealth: true, SleightOfHand: true},
		}).
		Return(&charactersvc.UpdateSkillProficienciesOutput{
			CharacterID: "c1",
			Skills:      entities.SkillProficiencies{Stealth: true, SleightOfHand: true},
		}, nil)

	resp := s.exec(s.ctx, `mutation {
		updateSkillProficiencies(characterId: "c1", input: {
			acrobatics: false, animalHandling: false, arcana: false, athletics: false,
			deception: false, history: false, insight: false, intimidation: false,
			investigation: false, medicine: false, nature: false, perception: false,
			performance: false, persuasion: false, religion: false, sleightOfHand: true,
			stealth: true, survival: false
		}) { characterId stealth sleightOfHand arcana }
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"updateSkillProficiencies": {"characterId": "c1", "stealth": true, "sleightOfHand": true, "arcana": false}}`,
		string(resp.Data))
}

func (s *HandlerTestSuite) TestUnprepareSpell_AbsentEntry() {
	s.mockCharacter.EXPECT().
		UnprepareSpell(gomock.Any(), &charactersvc.UnprepareSpellInput{
			UserID:      testUserID,
			CharacterID: "c1",
			SpellID:     "fireball",
		}).
		Return(&charactersvc.UnprepareSpellOutput{
			Entry: &entities.CharacterSpell{CharacterID: "c1", SpellID: "fireball", Prepared: false},
		}, nil)
	s.mockSpell.EXPECT().
		GetSpellByID(gomock.Any(), &spellsvc.GetSpellByIDInput{SpellID: "fireball"}).
		Return(&spellsvc.GetSpellByIDOutput{Spell: &entities.Spell{ID: "fireball", Name: "Fireball"}}, nil)

	resp := s.exec(s.ctx, `mutation {
		unprepareSpell(characterId: "c1", spellId: "fireball") { id characterId prepared spell { id } }
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"unprepareSpell": {"id": null, "characterId": "c1", "prepared": false, "spell": {"id": "fireball"}}}`,
		string(resp.Data))
}

func (s *HandlerTestSuite) TestUnprepareSpell_UnknownCatalogSpell() {
	s.mockCharacter.EXPECT().
		UnprepareSpell(gomock.Any(), gomock.Any()).
		Return(&charactersvc.UnprepareSpellOutput{
			Entry: &entities.CharacterSpell{CharacterID: "c1", SpellID: "wish", Prepared: false},
		}, nil)
	s.mockSpell.EXPECT().
		GetSpellByID(gomock.Any(), &spellsvc.GetSpellByIDInput{SpellID: "wish"}).
		Return(nil, errors.NotFound("spell not found"))

	resp := s.exec(s.ctx, `mutation {
		unprepareSpell(characterId: "c1", spellId: "wish") { id characterId prepared spell { id } }
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"unprepareSpell": {"id": null, "characterId": "c1", "prepared": false, "spell": {"id": "wish"}}}`,
		string(resp.Data))
}

func (s *HandlerTestSuite) TestSpellbookEntry_SpellLookupFailure() {
	s.mockCharacter.EXPECT().
		PrepareSpell(gomock.Any(), gomock.Any()).
		Return(&charactersvc.PrepareSpellOutput{
			Entry: &entities.CharacterSpell{ID: "e1", CharacterID: "c1", SpellID: "shield", Prepared: true},
		}, nil)
	s.mockSpell.EXPECT().
		GetSpellByID(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(stderrors.New("connection reset"), "failed to get spell"))

	resp := s.exec(s.ctx, `mutation {
		prepareSpell(characterId: "c1", spellId: "shield") { id spell { id } }
	}`, nil)

	s.requireCode(resp, errors.CodeInternal)
}

func (s *HandlerTestSuite) TestSpellbook_DefaultsToAllEntriesWithListedSpells() {
	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(&charactersvc.GetCharacterOutput{Character: &entities.Character{ID: "c1"}}, nil)
	s.mockCharacter.EXPECT().
		ListSpellbook(gomock.Any(), &charactersvc.ListSpellbookInput{CharacterID: "c1", PreparedOnly: false}).
		Return(&charactersvc.ListSpellbookOutput{Entries: []*entities.CharacterSpell{
			{ID: "e1", CharacterID: "c1", SpellID: "fireball", Prepared: false,
				Spell: &entities.Spell{ID: "fireball", Name: "Fireball", Level: 3}},
			{ID: "e2", CharacterID: "c1", SpellID: "shield", Prepared: true,
				Spell: &entities.Spell{ID: "shield", Name: "Shield", Level: 1}},
		}}, nil)

	resp := s.exec(s.ctx, `{
		character(id: "c1") { spellbook { id prepared spell { name } } }
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"character": {"spellbook": [
		{"id": "e1", "prepared": false, "spell": {"name": "Fireball"}},
		{"id": "e2", "prepared": true, "spell": {"name": "Shield"}}
	]}}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestSpellbook_PreparedOnly() {
	s.mockCharacter.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(&charactersvc.GetCharacterOutput{Character: &entities.Character{ID: "c1"}}, nil)
	s.mockCharacter.EXPECT().
		ListSpellbook(gomock.Any(), &charactersvc.ListSpellbookInput{CharacterID: "c1", PreparedOnly: true}).
		Return(&charactersvc.ListSpellbookOutput{Entries: []*entities.CharacterSpell{
			{ID: "e1", CharacterID: "c1", SpellID: "shield", Prepared: true},
		}}, nil)
	s.mockSpell.EXPECT().
		GetSpellByID(gomock.Any(), &spellsvc.GetSpellByIDInput{SpellID: "shield"}).
		Return(&spellsvc.GetSpellByIDOutput{Spell: &entities.Spell{ID: "shield", Name: "Shield", Level: 1}}, nil)

	resp := s.exec(s.ctx, `{
		character(id: "c1") { spellbook(preparedOnly: true) { id prepared spell { name level } } }
	}`, nil)

	s.Require().Empty(resp.Errors)
	s.JSONEq(`{"character": {"spellbook": [
		{"id": "e1", "prepared": true, "spell": {"name": "Shield", "level": 1}}
	]}}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestHTTPHandler_UnauthenticatedExtension() {
	handler, err := graphql.NewHandler(&graphql.HandlerConfig{
		CharacterService: s.mockCharacter,
		SpellService:     s.mockSpell,
		DisableTracing:   true,
	})
	s.Require().NoError(err)

	body, err := json.Marshal(map[string]interface{}{
		"query": `{ currentUserCharacters { id } }`,
	})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Errors []struct {
			Message    string                 `json:"message"`
			Extensions map[string]interface{} `json:"extensions"`
		} `json:"errors"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Errors, 1)
	s.Equal("UNAUTHENTICATED", resp.Errors[0].Extensions["code"])
	s.Equal("UNAUTHENTICATED: authentication required", resp.Errors[0].Message)
}
