package schema

// Walk visits n and its descendants depth-first in declaration order.
// Returning false from fn stops the walk.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children() {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Walk(n, func(Node, int) bool {
		count++
		return true
	})
	return count
}
