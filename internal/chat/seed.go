package chat

// SeedUsers is the demo customer list the widget ships with.
func SeedUsers() []User {
	return []User{
		{ID: "cust_a", Name: "Customer A", Avatar: "👨‍💼", Status: "online"},
		{ID: "cust_b", Name: "Customer B", Avatar: "👩‍💻", Status: "away"},
		{ID: "cust_c", Name: "Customer C", Avatar: "🧔", Status: "offline"},
	}
}

// SeedStore builds a store pre-populated with the demo customers, a greeting
// in each conversation and the first customer selected.
func SeedStore() *Store {
	s := NewStore(SeedUsers())
	greetings := map[string]string{
		"cust_a": "Hello! How can I help you today?",
		"cust_b": "Welcome! What brings you here today?",
		"cust_c": "Hi there! How can I assist you?",
	}
	for id, text := range greetings {
		_ = s.Append(id, NewMessage(text, SenderAI))
	}
	s.Select("cust_a")
	return s
}
