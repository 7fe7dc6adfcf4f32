package console

import (
	"sort"
	"sync"

	"medcatalog/internal/domain"
)

// State is the console's view of the server: cached collections that are
// only replaced by an explicit refresh. Every mutation refreshes the
// collection it touched.
type State struct {
	client *Client

	mu            sync.RWMutex
	listings      []domain.Listing
	consultations []domain.Consultation
}

func NewState(c *Client) *State {
	return &State{client: c}
}

// Stats is the dashboard summary of the consultation queue.
type Stats struct {
	Total     int
	Pending   int
	Completed int
}

func (s *State) Listings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Listing(nil), s.listings...)
}

func (s *State) Consultations() []domain.Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Consultation(nil), s.consultations...)
}

// RefreshListings reloads listings, newest first.
func (s *State) RefreshListings() error {
	ls, err := s.client.Listings()
	if err != nil {
		return err
	}
	sort.SliceStable(ls, func(i, j int) bool { return ls[i].CreatedAt > ls[j].CreatedAt })
	s.mu.Lock()
	s.listings = ls
	s.mu.Unlock()
	return nil
}

// RefreshConsultations reloads consultations, newest first.
func (s *State) RefreshConsultations() error {
	cs, err := s.client.Consultations()
	if err != nil {
		return err
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].CreatedAt > cs[j].CreatedAt })
	s.mu.Lock()
	s.consultations = cs
	s.mu.Unlock()
	return nil
}

func (s *State) CreateListing(payload any) (domain.Listing, error) {
	l, err := s.client.CreateListing(payload)
	if err != nil {
		return l, err
	}
	return l, s.RefreshListings()
}

func (s *State) UpdateListing(id string, payload any) (domain.Listing, error) {
	l, err := s.client.UpdateListing(id, payload)
	if err != nil {
		return l, err
	}
	return l, s.RefreshListings()
}

func (s *State) DeleteListing(id string) error {
	if err := s.client.DeleteListing(id); err != nil {
		return err
	}
	return s.RefreshListings()
}

func (s *State) UpdateConsultation(id string, patch map[string]any) (domain.Consultation, error) {
	c, err := s.client.UpdateConsultation(id, patch)
	if err != nil {
		return c, err
	}
	return c, s.RefreshConsultations()
}

func (s *State) DeleteConsultation(id string) error {
	if err := s.client.DeleteConsultation(id); err != nil {
		return err
	}
	return s.RefreshConsultations()
}

// Stats counts the cached consultations; call RefreshConsultations first.
func (s *State) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Total: len(s.consultations)}
	for _, c := range s.consultations {
		switch c.Status {
		case domain.StatusPending:
			st.Pending++
		case domain.StatusCompleted:
			st.Completed++
		}
	}
	return st
}
