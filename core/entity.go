package core

// Entity is a unique identifier for an entity, 0 is never issued
type Entity uint64
