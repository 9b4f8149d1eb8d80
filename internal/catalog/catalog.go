// Package catalog holds the fixed set of people and quotes used to seed the store.
package catalog

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Entry is one person together with the quotes attributed to them.
type Entry struct {
	Name        string
	Description string
	ImageURL    string
	Quotes      []string
}

// Default is the seed catalog, in insertion order.
var Default = []Entry{
	{
		Name:        "Albert Einstein",
		Description: "Theoretical physicist known for the theory of relativity",
		ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"Imagination is more important than knowledge.",
			"Try not to become a person of success, but rather try to become a person of value.",
			"Life is like riding a bicycle. To keep your balance, you must keep moving.",
			"The important thing is not to stop questioning.",
			"Anyone who has never made a mistake has never tried anything new.",
		},
	},
	{
		Name:        "Maya Angelou",
		Description: "American poet, memoirist, and civil rights activist",
		ImageURL:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"If you don't like something, change it. If you can't change it, change your attitude.",
			"I've learned that people will forget what you said, people will forget what you did, but people will never forget how you made them feel.",
			"There is no greater agony than bearing an untold story inside you.",
			"We delight in the beauty of the butterfly, but rarely admit the changes it has gone through to achieve that beauty.",
			"Success is liking yourself, liking what you do, and liking how you do it.",
		},
	},
	{
		Name:        "Steve Jobs",
		Description: "Co-founder and CEO of Apple Inc.",
		ImageURL:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"Innovation distinguishes between a leader and a follower.",
			"Your work is going to fill a large part of your life, and the only way to be truly satisfied is to do what you believe is great work.",
			"Stay hungry, stay foolish.",
			"Design is not just what it looks like and feels like. Design is how it works.",
			"The only way to do great work is to love what you do.",
		},
	},
	{
		Name:        "Winston Churchill",
		Description: "British statesman and Prime Minister during WWII",
		ImageURL:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"Success is not final, failure is not fatal: it is the courage to continue that counts.",
			"We make a living by what we get, but we make a life by what we give.",
			"The pessimist sees difficulty in every opportunity. The optimist sees opportunity in every difficulty.",
			"Courage is what it takes to stand up and speak; courage is also what it takes to sit down and listen.",
			"Never give in, never give in, never, never, never, never.",
		},
	},
	{
		Name:        "Oprah Winfrey",
		Description: "Media executive, actress, and philanthropist",
		ImageURL:    "https://images.unsplash.com/photo-1594736797933-d0f6ed0e1ee1?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"The biggest adventure you can take is to live the life of your dreams.",
			"Be thankful for what you have; you'll end up having more.",
			"You become what you believe.",
			"The greatest discovery of all time is that a person can change his future by merely changing his attitude.",
			"Turn your wounds into wisdom.",
		},
	},
	{
		Name:        "Martin Luther King Jr.",
		Description: "Civil rights leader and activist",
		ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"Darkness cannot drive out darkness; only light can do that. Hate cannot drive out hate; only love can do that.",
			"The ultimate measure of a man is not where he stands in moments of comfort and convenience, but where he stands at times of challenge and controversy.",
			"Injustice anywhere is a threat to justice everywhere.",
			"Faith is taking the first step even when you don't see the whole staircase.",
			"Life's most persistent and urgent question is: What are you doing for others?",
		},
	},
	{
		Name:        "Mark Twain",
		Description: "American writer, humorist, and lecturer",
		ImageURL:    "https://images.unsplash.com/photo-1531427186611-ecfd6d936c79?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"The two most important days in your life are the day you are born and the day you find out why.",
			"Kindness is the language which the deaf can hear and the blind can see.",
			"Courage is resistance to fear, mastery of fear, not absence of fear.",
			"Always do right. This will gratify some people and astonish the rest.",
			"Don't go around saying the world owes you a living. The world owes you nothing. It was here first.",
		},
	},
	{
		Name:        "Nelson Mandela",
		Description: "South African anti-apartheid revolutionary and President",
		ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&h=500&fit=crop&crop=face",
		Quotes: []string{
			"Education is the most powerful weapon which you can use to change the world.",
			"It always seems impossible until it's done.",
			"I learned that courage was not the absence of fear, but the triumph over it.",
			"A good head and good heart are always a formidable combination.",
			"There is no passion to be found playing small – in settling for a life that is less than the one you are capable of living.",
		},
	},
}

// PeopleCount returns the number of people in entries.
func PeopleCount(entries []Entry) int {
	return len(entries)
}

// QuoteCount returns the total number of quotes across entries.
func QuoteCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n += len(e.Quotes)
	}
	return n
}

// Fingerprint returns a hex BLAKE2b-256 digest of the catalog content.
// Identifiers and timestamps are not part of an Entry, so two stores seeded
// from the same catalog produce the same fingerprint.
func Fingerprint(entries []Entry) string {
	h, _ := blake2b.New256(nil)
	for _, e := range entries {
		writeField(h, e.Name)
		writeField(h, e.Description)
		writeField(h, e.ImageURL)
		binary.Write(h, binary.BigEndian, uint32(len(e.Quotes)))
		for _, q := range e.Quotes {
			writeField(h, q)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// writeField length-prefixes s so adjacent fields cannot collide.
func writeField(w io.Writer, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	w.Write(n[:])
	io.WriteString(w, s)
}
