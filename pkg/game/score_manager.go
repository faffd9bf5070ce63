package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// MaxTopScores 每个难度保留的最好成绩条数
const MaxTopScores = 10

// 成绩存储在 gdata 对象 scores 下，属性名为难度名
const scoresObject = "scores"

// ScoreEntry 一条成绩记录
type ScoreEntry struct {
	Name    string    `yaml:"name"`    // 玩家名
	Seconds int       `yaml:"seconds"` // 用时（秒）
	Date    time.Time `yaml:"date"`    // 记录时间
}

// ScoreManager 排行榜管理器
//
// 职责：
//   - 按难度加载、保存最好成绩（YAML 格式）
//   - 按用时升序排列，用时相同时先记录的在前
//   - 每个难度最多保留 MaxTopScores 条
//
// gdataManager 为 nil 时降级为纯内存排行榜，程序退出后丢失。
type ScoreManager struct {
	gdataManager *gdata.Manager
	cache        map[string][]ScoreEntry // 已加载的排行榜，按难度索引
	now          func() time.Time
}

// NewScoreManager 创建排行榜管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	return &ScoreManager{
		gdataManager: gdataManager,
		cache:        make(map[string][]ScoreEntry),
		now:          time.Now,
	}
}

// load 返回指定难度的排行榜，首次访问时从 gdata 读取
//
// 记录损坏或读取失败时记录警告并从空榜开始，下一次保存会覆盖坏记录
func (sm *ScoreManager) load(difficulty string) []ScoreEntry {
	if entries, ok := sm.cache[difficulty]; ok {
		return entries
	}

	entries, err := sm.read(difficulty)
	if err != nil {
		log.WithError(err).WithField("difficulty", difficulty).Warn("discarding unreadable top scores")
		entries = nil
	}
	sm.cache[difficulty] = entries
	return entries
}

// read 从 gdata 解码排行榜，降级模式或无记录时返回空
func (sm *ScoreManager) read(difficulty string) ([]ScoreEntry, error) {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(scoresObject, difficulty) {
		return nil, nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores for %s: %w", difficulty, err)
	}

	var entries []ScoreEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scores for %s: %w", difficulty, err)
	}
	if len(entries) > MaxTopScores {
		entries = entries[:MaxTopScores]
	}
	return entries, nil
}

// save 把指定难度的排行榜写回 gdata，降级模式下什么都不做
func (sm *ScoreManager) save(difficulty string) error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.cache[difficulty])
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(scoresObject, difficulty, data); err != nil {
		return fmt.Errorf("failed to save scores for %s: %w", difficulty, err)
	}
	return nil
}

// TopScores 返回指定难度的排行榜副本
func (sm *ScoreManager) TopScores(difficulty string) []ScoreEntry {
	entries := sm.load(difficulty)
	out := make([]ScoreEntry, len(entries))
	copy(out, entries)
	return out
}

// Submit 提交一条成绩
//
// 返回：
//   - int: 名次（从 1 开始），没有进入排行榜时为 0
//   - error: 保存失败（内存中的排行榜仍然会更新）
func (sm *ScoreManager) Submit(difficulty, name string, seconds int) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "anonymous"
	}
	if seconds < 0 {
		seconds = 0
	}

	entries := sm.load(difficulty)

	pos := len(entries)
	for i, e := range entries {
		if seconds < e.Seconds {
			pos = i
			break
		}
	}
	if pos >= MaxTopScores {
		return 0, nil
	}

	entry := ScoreEntry{Name: name, Seconds: seconds, Date: sm.now().UTC().Truncate(time.Second)}
	updated := make([]ScoreEntry, 0, len(entries)+1)
	updated = append(updated, entries[:pos]...)
	updated = append(updated, entry)
	updated = append(updated, entries[pos:]...)
	if len(updated) > MaxTopScores {
		updated = updated[:MaxTopScores]
	}
	sm.cache[difficulty] = updated

	log.WithFields(logrus.Fields{
		"difficulty": difficulty,
		"name":       name,
		"seconds":    seconds,
		"rank":       pos + 1,
	}).Info("new top score")

	if err := sm.save(difficulty); err != nil {
		return pos + 1, err
	}
	return pos + 1, nil
}

// IsPersistent 排行榜是否会写入磁盘
func (sm *ScoreManager) IsPersistent() bool {
	return sm.gdataManager != nil
}
