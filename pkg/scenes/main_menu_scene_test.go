package scenes

import (
	"testing"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenuPrefillsFromSettings(t *testing.T) {
	services := newTestServices(t)
	services.Settings.SetLastPlayer("carol")
	services.Settings.SetLastDifficulty("hard")

	menu, err := NewMainMenuScene(game.NewSceneManager(), services)
	require.NoError(t, err)

	assert.Equal(t, "carol", menu.playerName())
	assert.Equal(t, "hard", menu.selected)

	hard, _ := ecs.GetComponent[*components.ButtonComponent](menu.entityManager, menu.difficultyButtons["hard"])
	easy, _ := ecs.GetComponent[*components.ButtonComponent](menu.entityManager, menu.difficultyButtons["easy"])
	assert.True(t, hard.Selected)
	assert.False(t, easy.Selected)
}

func TestMainMenuUnknownLastDifficultyFallsBack(t *testing.T) {
	services := newTestServices(t)
	services.Settings.SetLastDifficulty("nightmare")

	menu, err := NewMainMenuScene(game.NewSceneManager(), services)
	require.NoError(t, err)
	assert.Equal(t, "easy", menu.selected)
}

func TestMainMenuStartRequiresName(t *testing.T) {
	sm := game.NewSceneManager()
	services := newTestServices(t)
	menu, err := NewMainMenuScene(sm, services)
	require.NoError(t, err)
	sm.SwitchTo(menu)

	assert.False(t, menu.start())
	assert.NotEmpty(t, menu.message)
	assert.Same(t, menu, sm.GetCurrentScene())
}

func TestMainMenuStartSwitchesScene(t *testing.T) {
	sm := game.NewSceneManager()
	services := newTestServices(t)
	var gotPlayer, gotDifficulty string
	sm.SetSceneFactory(func(player, difficulty string) game.Scene {
		gotPlayer, gotDifficulty = player, difficulty
		scene, err := NewGameScene(sm, services, player, difficulty)
		if err != nil {
			return nil
		}
		return scene
	})

	menu, err := NewMainMenuScene(sm, services)
	require.NoError(t, err)
	sm.SwitchTo(menu)

	input, _ := ecs.GetComponent[*components.TextInputComponent](menu.entityManager, menu.nameInput)
	input.Text = "  dave "
	menu.selectDifficulty("hard")

	assert.True(t, menu.start())
	assert.Equal(t, "dave", gotPlayer)
	assert.Equal(t, "hard", gotDifficulty)
	assert.IsType(t, &GameScene{}, sm.GetCurrentScene())
	assert.Equal(t, "dave", services.Settings.GetSettings().LastPlayer)
}

func TestMainMenuDifficultyButtonClick(t *testing.T) {
	menu, err := NewMainMenuScene(game.NewSceneManager(), newTestServices(t))
	require.NoError(t, err)

	pos, _ := ecs.GetComponent[*components.PositionComponent](menu.entityManager, menu.difficultyButtons["hard"])
	assert.True(t, menu.buttonSystem.HandlePointer(int(pos.X)+5, int(pos.Y)+5, true))
	assert.Equal(t, "hard", menu.selected)
}
