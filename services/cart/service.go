package cart

import (
	"sync"

	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/commerceapi"
)

type service struct {
	client commerceapi.Client
	logger mylog.Logger

	mutex   sync.Mutex
	mirrors map[string][]commerceapi.CartLine
	locks   map[string]*sync.Mutex
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(client commerceapi.Client, logger mylog.Logger) *service {
	return &service{
		client:  client,
		logger:  logger,
		mirrors: map[string][]commerceapi.CartLine{},
		locks:   map[string]*sync.Mutex{},
	}
}

// lockFor serializes all cart mutations of one session. Rapid repeated
// triggers (double-clicked "add to cart") can no longer interleave their
// remote calls.
func (s *service) lockFor(sessionUID string) *sync.Mutex {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lock, found := s.locks[sessionUID]
	if !found {
		lock = &sync.Mutex{}
		s.locks[sessionUID] = lock
	}
	return lock
}

func (s *service) getMirror(sessionUID string) []commerceapi.CartLine {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.mirrors[sessionUID]
}

func (s *service) setMirror(sessionUID string, lines []commerceapi.CartLine) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.mirrors[sessionUID] = lines
}

// evict drops a session's mirror and lock so finished sessions do not
// accumulate in the maps. A later operation on the same session simply
// recreates the entries.
func (s *service) evict(sessionUID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.mirrors, sessionUID)
	delete(s.locks, sessionUID)
}
