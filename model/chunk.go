package model

type ChunkOverview struct {
	Start    string
	End      string
	Filename string
}

// Pair locates one key's records in a chunk's data section.
type Pair struct {
	Start uint32
	End   uint32
}

type ChunkIndex = map[string]Pair
