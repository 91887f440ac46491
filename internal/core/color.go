package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for field elements.
const (
	ColorDefault Color = iota
	ColorGold          // Stars
	ColorOrange        // Clock in the last seconds
	ColorBlue          // Basket body
	ColorViolet        // Basket handles
	ColorCyan          // Basket core
	ColorGray          // Line between HUD and field
	ColorWhite         // HUD text
)
