package applications

import "sync"

// CachedResume is the extracted text of a previously uploaded resume.
type CachedResume struct {
	Text     string
	Filename string
}

// ResumeCache keeps extracted resume text per session so follow-up job
// descriptions can be processed without re-uploading the file.
type ResumeCache struct {
	mu   sync.RWMutex
	data map[string]CachedResume
}

// NewResumeCache constructs an empty ResumeCache.
func NewResumeCache() *ResumeCache {
	return &ResumeCache{data: make(map[string]CachedResume)}
}

// Put stores the extracted resume for a session key.
func (c *ResumeCache) Put(sessionKey string, resume CachedResume) {
	if sessionKey == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[sessionKey] = resume
}

// Get returns the cached resume for a session key, if any.
func (c *ResumeCache) Get(sessionKey string) (CachedResume, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resume, ok := c.data[sessionKey]
	return resume, ok
}

// Clear evicts the cached resume for a session key.
func (c *ResumeCache) Clear(sessionKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, sessionKey)
}
