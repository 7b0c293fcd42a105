package renderer

import (
	log "github.com/sirupsen/logrus"
)

// locateFunc resolves a uniform name to its location in a linked program
type locateFunc func(name string) int32

func newUniformCache(locate locateFunc, logger log.FieldLogger) *uniformCache {
	return &uniformCache{
		locate:    locate,
		locations: make(map[string]int32),
		logger:    logger,
	}
}

// uniformCache looks up each uniform location once. A linked program
// never changes, so entries are never invalidated.
type uniformCache struct {
	locate    locateFunc
	locations map[string]int32
	logger    log.FieldLogger
}

// Location returns the cached location of name, -1 when the program
// has no such active uniform
func (c *uniformCache) Location(name string) int32 {
	if location, ok := c.locations[name]; ok {
		return location
	}

	location := c.locate(name)
	c.locations[name] = location
	if location < 0 {
		c.logger.WithField("uniform", name).Debug("uniform is not active in program")
	}
	return location
}
