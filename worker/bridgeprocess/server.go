// Package bridgeprocess implements the TileBridge service: a stateful
// registry of tiled layers plus the op dispatch that maps wire
// requests onto layer operations for both key shapes.
package bridgeprocess

import (
	"io/ioutil"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/nci/tilebridge/cache"
	"github.com/nci/tilebridge/catalog"
)

// Server holds the layers created by a host session, addressed by
// opaque handle. Catalog and Cache may be nil when the deployment has
// no PostgreSQL or memcached behind it.
type Server struct {
	Catalog *catalog.Catalog
	Cache   *cache.TileCache
	Info    *log.Logger
	Error   *log.Logger

	mu     sync.RWMutex
	layers map[string]interface{}
}

func NewServer(cat *catalog.Catalog, tc *cache.TileCache, verbose bool) *Server {
	infoDst := ioutil.Discard
	if verbose {
		infoDst = os.Stdout
	}
	return &Server{
		Catalog: cat,
		Cache:   tc,
		Info:    log.New(infoDst, "BRIDGE: ", log.Ldate|log.Ltime|log.Lshortfile),
		Error:   log.New(os.Stderr, "BRIDGE: ", log.Ldate|log.Ltime|log.Lshortfile),
		layers:  make(map[string]interface{}),
	}
}

func (s *Server) putLayer(l interface{}) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.layers[id] = l
	s.mu.Unlock()
	return id
}

func (s *Server) getLayer(id string) (interface{}, bool) {
	s.mu.RLock()
	l, ok := s.layers[id]
	s.mu.RUnlock()
	return l, ok
}

func (s *Server) dropLayer(id string) bool {
	s.mu.Lock()
	_, ok := s.layers[id]
	delete(s.layers, id)
	s.mu.Unlock()
	return ok
}
