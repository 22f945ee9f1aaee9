// Package cache 按源路径缓存解析后的数据集
package cache

import (
	"sort"
	"sync"

	"github.com/emiranda028/hoteles-sub000/internal/model"
)

// Store 按源路径缓存解析结果；写入整体替换，后写者胜出
type Store interface {
	Get(path string) (*model.Dataset, bool)
	Put(path string, ds *model.Dataset)
	Invalidate(path string) bool
	Clear()
	Paths() []string
	Count() int
}

// MemoryStore 内存缓存
type MemoryStore struct {
	entries map[string]*model.Dataset
	mu      sync.RWMutex
}

// NewMemory 创建内存缓存
func NewMemory() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*model.Dataset)}
}

// Get 获取缓存的数据集
func (s *MemoryStore) Get(path string) (*model.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.entries[path]
	return ds, ok
}

// Put 整体替换 path 对应的条目；ds 为 nil 时删除
func (s *MemoryStore) Put(path string, ds *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ds == nil {
		delete(s.entries, path)
		return
	}
	s.entries[path] = ds
}

// Invalidate 删除 path 对应的条目，返回删除前是否存在
func (s *MemoryStore) Invalidate(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[path]
	delete(s.entries, path)
	return ok
}

// Clear 清空缓存
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*model.Dataset)
}

// Paths 返回已缓存的路径（已排序）
func (s *MemoryStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Count 返回缓存条目数
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
