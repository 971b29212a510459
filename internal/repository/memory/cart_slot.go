package memory

// CartSlot keeps a saved cart in process memory.
type CartSlot struct {
	payload []byte
}

// NewCartSlot creates an empty slot.
func NewCartSlot() *CartSlot {
	return &CartSlot{}
}

func (s *CartSlot) Load() ([]byte, error) {
	if s.payload == nil {
		return nil, nil
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *CartSlot) Save(payload []byte) error {
	s.payload = append([]byte(nil), payload...)
	return nil
}
