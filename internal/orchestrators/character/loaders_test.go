package character_test

import (
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	characterrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/character"
	spellbookrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellbook"
	spellslotrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellslot"
	charactersvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
)

func (s *OrchestratorTestSuite) TestGetStats() {
	stats := &entities.CharacterStats{CharacterID: testCharacterID}
	s.mockCharRepo.EXPECT().
		GetStats(s.ctx, characterrepo.GetStatsInput{CharacterID: testCharacterID}).
		Return(&characterrepo.GetStatsOutput{Stats: stats}, nil)

	output, err := s.orchestrator.GetStats(s.ctx, &charactersvc.GetStatsInput{CharacterID: testCharacterID})

	s.Require().NoError(err)
	s.Same(stats, output.Stats)
}

func (s *OrchestratorTestSuite) TestListInventory_BuildsPredicate() {
	equipped := true
	f := &filter.InventoryFilter{Equipped: &equipped}
	items := []*entities.InventoryItem{{ID: "i1", CharacterID: testCharacterID, Name: "Staff", Equipped: true}}

	s.mockCharRepo.EXPECT().
		ListInventory(s.ctx, characterrepo.ListInventoryInput{
			CharacterID: testCharacterID,
			Predicate:   filter.BuildInventoryWhere(f),
		}).
		Return(&characterrepo.ListInventoryOutput{Items: items}, nil)

	output, err := s.orchestrator.ListInventory(s.ctx, &charactersvc.ListInventoryInput{
		CharacterID: testCharacterID,
		Filter:      f,
	})

	s.Require().NoError(err)
	s.Equal(items, output.Items)
}

func (s *OrchestratorTestSuite) TestListAttacksAndFeatures() {
	s.mockCharRepo.EXPECT().
		ListAttacks(s.ctx, characterrepo.ListAttacksInput{CharacterID: testCharacterID}).
		Return(&characterrepo.ListAttacksOutput{Attacks: []*entities.Attack{{ID: "a1"}}}, nil)
	s.mockCharRepo.EXPECT().
		ListFeatures(s.ctx, characterrepo.ListFeaturesInput{CharacterID: testCharacterID}).
		Return(&characterrepo.ListFeaturesOutput{Features: []*entities.CharacterFeature{{ID: "f1"}}}, nil)

	attacks, err := s.orchestrator.ListAttacks(s.ctx, &charactersvc.ListAttacksInput{CharacterID: testCharacterID})
	s.Require().NoError(err)
	s.Len(attacks.Attacks, 1)

	features, err := s.orchestrator.ListFeatures(s.ctx, &charactersvc.ListFeaturesInput{CharacterID: testCharacterID})
	s.Require().NoError(err)
	s.Len(features.Features, 1)
}

func (s *OrchestratorTestSuite) TestListSpellSlots() {
	slots := []*entities.SpellSlot{
		{ID: "s1", Level: 1, Total: 4},
		{ID: "s2", Level: 2, Total: 3},
	}
	s.mockSlotRepo.EXPECT().
		List(s.ctx, spellslotrepo.ListInput{CharacterID: testCharacterID}).
		Return(&spellslotrepo.ListOutput{Slots: slots}, nil)

	output, err := s.orchestrator.ListSpellSlots(s.ctx, &charactersvc.ListSpellSlotsInput{CharacterID: testCharacterID})

	s.Require().NoError(err)
	s.Equal(slots, output.Slots)
}

func (s *OrchestratorTestSuite) TestListSpellbook_PreparedOnly() {
	entries := []*entities.CharacterSpell{{ID: "e1", SpellID: testSpellID, Prepared: true}}
	s.mockBookRepo.EXPECT().
		List(s.ctx, spellbookrepo.ListInput{CharacterID: testCharacterID, PreparedOnly: true}).
		Return(&spellbookrepo.ListOutput{Entries: entries}, nil)

	output, err := s.orchestrator.ListSpellbook(s.ctx, &charactersvc.ListSpellbookInput{
		CharacterID:  testCharacterID,
		PreparedOnly: true,
	})

	s.Require().NoError(err)
	s.Equal(entries, output.Entries)
}

func (s *OrchestratorTestSuite) TestLoaders_RequireCharacterID() {
	_, err := s.orchestrator.GetStats(s.ctx, &charactersvc.GetStatsInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListSpellbook(s.ctx, &charactersvc.ListSpellbookInput{})
	s.True(errors.IsInvalidArgument(err))
}
