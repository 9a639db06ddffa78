package app

// randomTitle picks a game title from the configured pool.
func (s *GameService) randomTitle() string {
	titles := s.cfg.Titles
	if len(titles) == 0 {
		return "Whist"
	}
	return titles[s.rng.Intn(len(titles))]
}
