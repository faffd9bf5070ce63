package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	require.NotNil(t, settings)

	assert.Equal(t, "", settings.LastPlayer)
	assert.Equal(t, "easy", settings.LastDifficulty)
	assert.True(t, settings.ShowHelp)
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	require.NotNil(t, sm.GetSettings())

	sm.SetLastPlayer("  alice ")
	sm.SetLastDifficulty("hard")
	sm.SetShowHelp(false)

	assert.NoError(t, sm.Save())
	assert.Equal(t, "alice", sm.GetSettings().LastPlayer)

	// 降级模式下 Load 回到默认值
	require.NoError(t, sm.Load())
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
}

// TestSettingsManagerRoundTrip 测试保存后重新加载
func TestSettingsManagerRoundTrip(t *testing.T) {
	m := openTestGdata(t, "minesweeper_settings_test")

	sm := NewSettingsManager(m)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())

	sm.SetLastPlayer("bob")
	sm.SetLastDifficulty("medium")
	sm.SetShowHelp(false)
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(m)
	got := reloaded.GetSettings()
	assert.Equal(t, "bob", got.LastPlayer)
	assert.Equal(t, "medium", got.LastDifficulty)
	assert.False(t, got.ShowHelp)
}

// TestSettingsManagerPartialData 旧版本写入的字段缺失时保留默认值
func TestSettingsManagerPartialData(t *testing.T) {
	m := openTestGdata(t, "minesweeper_settings_partial_test")
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("lastPlayer: carol\n")))

	sm := NewSettingsManager(m)
	got := sm.GetSettings()
	assert.Equal(t, "carol", got.LastPlayer)
	assert.Equal(t, "easy", got.LastDifficulty)
	assert.True(t, got.ShowHelp)
}

// TestSettingsManagerCorruptData 数据损坏时回退到默认设置
func TestSettingsManagerCorruptData(t *testing.T) {
	m := openTestGdata(t, "minesweeper_settings_corrupt_test")
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("[unterminated")))

	sm := NewSettingsManager(m)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
	assert.Error(t, sm.Load())
}
