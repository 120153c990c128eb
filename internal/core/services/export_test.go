package services

func SetParentProcessName(fn func() (string, error)) func() {
	prev := parentProcessName
	parentProcessName = fn
	return func() { parentProcessName = prev }
}

func (s *UpdateScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler != nil
}
