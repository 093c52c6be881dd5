package subset

import "sort"

// WordSet is a membership set of words, fixed for the duration of a run.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from a word list.
func NewWordSet(words []string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a member of the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Missing returns the members absent from kept, sorted.
func (s WordSet) Missing(kept map[string][]float64) []string {
	var missing []string
	for w := range s {
		if _, ok := kept[w]; !ok {
			missing = append(missing, w)
		}
	}
	sort.Strings(missing)
	return missing
}

// DefaultRequiredWords is the curated vocabulary the client-side embedding
// demos depend on. These words are kept regardless of frequency rank.
func DefaultRequiredWords() []string {
	return []string{
		// Vector arithmetic demos
		"king", "queen", "man", "woman", "prince", "princess",
		"boy", "girl", "father", "mother", "son", "daughter",
		"brother", "sister", "husband", "wife", "uncle", "aunt",
		"grandfather", "grandmother", "lord", "lady", "duke", "duchess",
		"emperor", "empress", "sir", "madam",
		// Gender terms
		"he", "she", "him", "her", "his", "hers", "male", "female",
		// Countries and capitals
		"france", "paris", "germany", "berlin", "japan", "tokyo",
		"italy", "rome", "spain", "madrid", "china", "beijing",
		"russia", "moscow", "brazil", "india", "delhi", "canada", "ottawa",
		// Professions (for bias detection)
		"doctor", "nurse", "engineer", "teacher", "programmer", "scientist",
		"lawyer", "pilot", "mechanic", "secretary", "professor", "surgeon",
		"accountant", "architect", "carpenter", "chef", "dentist",
		"electrician", "firefighter", "journalist", "librarian", "manager",
		"musician", "painter", "pharmacist", "plumber", "police",
		"receptionist", "soldier", "veterinarian",
		// Animals
		"cat", "dog", "horse", "bird", "fish", "lion", "tiger", "bear",
		"wolf", "eagle", "snake", "rabbit",
		// Emotions
		"happy", "sad", "angry", "afraid", "surprised", "calm", "excited",
		"anxious", "proud", "love", "hate", "fear", "joy",
		// Food
		"pizza", "sushi", "pasta", "rice", "bread", "cheese",
		// Verb tenses
		"walking", "walked", "running", "ran", "swimming", "swam",
		"flying", "flew",
		// Additional useful words
		"computer", "technology", "algorithm", "data", "intelligence",
		"artificial", "ethics", "bias", "fair", "unfair", "justice",
		"equality", "freedom", "privacy", "safety", "risk",
	}
}
