package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/equipment"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
	"github.com/gw1tools/gw1builds-sub003/internal/gamedata"
	gamedatamock "github.com/gw1tools/gw1builds-sub003/internal/gamedata/mock"
)

func TestNew_RequiresGameData(t *testing.T) {
	_, err := equipment.New(&equipment.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEffectiveAttributes_RunesStack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockData := gamedatamock.NewMockService(ctrl)
	resolver, err := equipment.New(&equipment.Config{GameData: mockData})
	require.NoError(t, err)

	mockData.EXPECT().Rune(301).Return(gamedata.Rune{
		ID: 301, Attribute: "Strength", Bonus: 1, Profession: build.ProfessionWarrior,
	}, true).Times(2)
	mockData.EXPECT().Rune(303).Return(gamedata.Rune{
		ID: 303, Attribute: "Strength", Bonus: 3, Profession: build.ProfessionWarrior,
	}, true)

	base := map[string]int{"Strength": 10, "Axe Mastery": 12}
	eq := &build.Equipment{
		Armor: &build.ArmorSetConfig{
			Head:  build.ArmorSlot{RuneID: 301},
			Chest: build.ArmorSlot{RuneID: 303},
			Legs:  build.ArmorSlot{RuneID: 301},
		},
	}

	effective := resolver.EffectiveAttributes(base, eq)

	assert.Equal(t, 15, effective["Strength"], "1+3+1 on top of 10")
	assert.Equal(t, 12, effective["Axe Mastery"])
	assert.Equal(t, 10, base["Strength"], "input map must not be mutated")
}

func TestEffectiveAttributes_SuffixFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockData := gamedatamock.NewMockService(ctrl)
	resolver, err := equipment.New(&equipment.Config{GameData: mockData})
	require.NoError(t, err)

	mockData.EXPECT().Modifier(213).Return(gamedata.Modifier{
		ID: 213, Position: "suffix", Attribute: "Channeling Magic", Floor: 9,
	}, true).Times(2)

	t.Run("raises missing attribute to the floor", func(t *testing.T) {
		eq := &build.Equipment{
			WeaponSets: []build.WeaponSet{
				{MainHand: &build.WeaponConfig{ItemID: 108, SuffixID: 213}},
			},
		}
		effective := resolver.EffectiveAttributes(map[string]int{"Strength": 12}, eq)
		assert.Equal(t, 9, effective["Channeling Magic"], "floor applies outside the profession set")
	})

	t.Run("never lowers a higher value", func(t *testing.T) {
		eq := &build.Equipment{
			WeaponSets: []build.WeaponSet{
				{MainHand: &build.WeaponConfig{ItemID: 108, SuffixID: 213}},
			},
		}
		effective := resolver.EffectiveAttributes(map[string]int{"Channeling Magic": 12}, eq)
		assert.Equal(t, 12, effective["Channeling Magic"])
	})
}

func TestEffectiveAttributes_OnlyFirstWeaponSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockData := gamedatamock.NewMockService(ctrl)
	resolver, err := equipment.New(&equipment.Config{GameData: mockData})
	require.NoError(t, err)

	// No Modifier expectation for the second set: it must never be consulted.
	eq := &build.Equipment{
		WeaponSets: []build.WeaponSet{
			{},
			{MainHand: &build.WeaponConfig{ItemID: 101, SuffixID: 212}},
		},
	}

	effective := resolver.EffectiveAttributes(map[string]int{}, eq)
	assert.Empty(t, effective)
}

func TestEffectiveAttributes_NilEquipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, err := equipment.New(&equipment.Config{GameData: gamedatamock.NewMockService(ctrl)})
	require.NoError(t, err)

	base := map[string]int{"Fire Magic": 12}
	effective := resolver.EffectiveAttributes(base, nil)
	assert.Equal(t, base, effective)
}

func TestValidateArmorForProfession(t *testing.T) {
	data, err := gamedata.Load()
	require.NoError(t, err)
	resolver, err := equipment.New(&equipment.Config{GameData: data})
	require.NoError(t, err)

	// Mesmer rune on the head, Warrior-bound rune and insignia on the
	// chest, unrestricted vigor rune and Survivor insignia elsewhere.
	armor := &build.ArmorSetConfig{
		Head:  build.ArmorSlot{RuneID: 341},
		Chest: build.ArmorSlot{RuneID: 301, InsigniaID: 511},
		Hands: build.ArmorSlot{RuneID: 410},
		Legs:  build.ArmorSlot{InsigniaID: 501},
	}

	invalid := resolver.ValidateArmorForProfession(armor, build.ProfessionMesmer)
	require.Len(t, invalid, 2)

	assert.Equal(t, build.SlotChest, invalid[0].Slot)
	assert.Equal(t, equipment.KindRune, invalid[0].Kind)
	assert.Equal(t, 301, invalid[0].ItemID)
	assert.Contains(t, invalid[0].Reason, build.ProfessionWarrior)

	assert.Equal(t, build.SlotChest, invalid[1].Slot)
	assert.Equal(t, equipment.KindInsignia, invalid[1].Kind)
	assert.Equal(t, 511, invalid[1].ItemID)

	t.Run("matching profession flags only the foreign rune", func(t *testing.T) {
		flagged := resolver.ValidateArmorForProfession(armor, build.ProfessionWarrior)
		require.Len(t, flagged, 1)
		assert.Equal(t, 341, flagged[0].ItemID)
	})

	t.Run("nil armor validates clean", func(t *testing.T) {
		assert.Empty(t, resolver.ValidateArmorForProfession(nil, build.ProfessionWarrior))
	})
}

func TestClearInvalidEquipment(t *testing.T) {
	data, err := gamedata.Load()
	require.NoError(t, err)
	resolver, err := equipment.New(&equipment.Config{GameData: data})
	require.NoError(t, err)

	armor := &build.ArmorSetConfig{
		Head:          build.ArmorSlot{RuneID: 341, InsigniaID: 501},
		Chest:         build.ArmorSlot{RuneID: 301, InsigniaID: 511},
		HeadAttribute: "Fast Casting",
	}

	invalid := resolver.ValidateArmorForProfession(armor, build.ProfessionMesmer)
	cleared := equipment.ClearInvalidEquipment(armor, invalid)

	assert.Zero(t, cleared.Chest.RuneID, "flagged rune removed")
	assert.Zero(t, cleared.Chest.InsigniaID, "flagged insignia removed")
	assert.Equal(t, 341, cleared.Head.RuneID, "valid rune untouched")
	assert.Equal(t, 501, cleared.Head.InsigniaID, "unrestricted insignia untouched")
	assert.Equal(t, "Fast Casting", cleared.HeadAttribute)

	assert.Equal(t, 301, armor.Chest.RuneID, "original config untouched")
}
