package services

import "github.com/EswarAdityaReddy/Foodie/entity"

// DiscoveryView is the filtered restaurant list for a session's selection.
type DiscoveryView struct {
	SelectedCategory string              `json:"selectedCategory"`
	SearchQuery      string              `json:"searchQuery"`
	Heading          string              `json:"heading"`
	Restaurants      []entity.Restaurant `json:"restaurants"`
}

// DiscoveryService keeps the category/search selection on the session and
// re-derives the list on every change and every read.
type DiscoveryService struct {
	Sessions *SessionStore
	Catalog  *CatalogService
}

func NewDiscoveryService(sessions *SessionStore, catalog *CatalogService) *DiscoveryService {
	return &DiscoveryService{Sessions: sessions, Catalog: catalog}
}

func (s *DiscoveryService) View(sessionID string) (DiscoveryView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return DiscoveryView{}, err
	}
	return s.view(sess), nil
}

// ToggleCategory selects categoryID, or clears the selection if it was already selected.
func (s *DiscoveryService) ToggleCategory(sessionID, categoryID string) (DiscoveryView, error) {
	if _, ok := s.Catalog.CategoryName(categoryID); !ok {
		return DiscoveryView{}, ErrCategoryNotFound
	}
	sess, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.SelectedCategoryID = ToggleCategory(sess.SelectedCategoryID, categoryID)
		return nil
	})
	if err != nil {
		return DiscoveryView{}, err
	}
	return s.view(sess), nil
}

func (s *DiscoveryService) SetQuery(sessionID, query string) (DiscoveryView, error) {
	sess, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.SearchQuery = query
		return nil
	})
	if err != nil {
		return DiscoveryView{}, err
	}
	return s.view(sess), nil
}

// ToggleFavorite marks or unmarks a restaurant for the session.
func (s *DiscoveryService) ToggleFavorite(sessionID, restaurantID string) (bool, error) {
	if _, err := s.Catalog.Restaurant(restaurantID); err != nil {
		return false, err
	}
	var on bool
	_, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.Favorites, on = ToggleFavorite(sess.Favorites, restaurantID)
		return nil
	})
	return on, err
}

// Favorites lists the session's favorite restaurants in catalog order.
func (s *DiscoveryService) Favorites(sessionID string) ([]entity.Restaurant, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	marked := make(map[string]bool, len(sess.Favorites))
	for _, id := range sess.Favorites {
		marked[id] = true
	}
	out := []entity.Restaurant{}
	for _, r := range s.Catalog.Restaurants() {
		if marked[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *DiscoveryService) view(sess Session) DiscoveryView {
	heading := "Restaurants near you"
	if name, ok := s.Catalog.CategoryName(sess.SelectedCategoryID); ok {
		heading = "Best " + name
	}
	return DiscoveryView{
		SelectedCategory: sess.SelectedCategoryID,
		SearchQuery:      sess.SearchQuery,
		Heading:          heading,
		Restaurants:      s.Catalog.Filter(sess.SelectedCategoryID, sess.SearchQuery),
	}
}
