package patterns

// PatternDefinition describes when a problem belongs to a named DSA technique.
type PatternDefinition struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Topics   []string `json:"topics"`
}

var definitions = []PatternDefinition{
	{
		Name:     "Two Pointers",
		Keywords: []string{"two pointer", "pair with", "sorted array", "palindrome", "container with most water", "3sum", "two sum ii", "remove duplicates", "squares of a sorted"},
		Topics:   []string{"two pointers"},
	},
	{
		Name:     "Sliding Window",
		Keywords: []string{"substring", "subarray", "window", "consecutive ones", "longest repeating", "fruit into baskets", "maximum average"},
		Topics:   []string{"sliding window"},
	},
	{
		Name:     "Fast & Slow Pointers",
		Keywords: []string{"cycle", "happy number", "middle of the linked list", "circular array"},
		Topics:   []string{"fast and slow pointers", "fast & slow pointers"},
	},
	{
		Name:     "Merge Intervals",
		Keywords: []string{"interval", "meeting room", "overlap", "free time", "non-overlapping"},
		Topics:   []string{"intervals"},
	},
	{
		Name:     "Cyclic Sort",
		Keywords: []string{"missing number", "find the duplicate", "first missing positive", "corrupt pair", "disappeared numbers"},
		Topics:   []string{"cyclic sort"},
	},
	{
		Name:     "In-place Reversal of a LinkedList",
		Keywords: []string{"reverse linked list", "reverse nodes", "rotate list", "swap nodes", "reorder list"},
		Topics:   []string{"linked list reversal"},
	},
	{
		Name:     "Linked List",
		Keywords: []string{"linked list", "listnode", "lru cache", "copy list with random"},
		Topics:   []string{"linked list"},
	},
	{
		Name:     "Tree BFS",
		Keywords: []string{"level order", "zigzag", "right side view", "minimum depth", "level averages", "connect level", "bfs"},
		Topics:   []string{"tree bfs", "breadth-first search", "breadth first search"},
	},
	{
		Name:     "Tree DFS",
		Keywords: []string{"path sum", "maximum depth", "diameter of binary tree", "inorder", "preorder", "postorder", "lowest common ancestor", "subtree", "invert binary tree", "balanced binary tree"},
		Topics:   []string{"tree dfs", "binary tree", "depth-first search", "depth first search"},
	},
	{
		Name:     "Binary Search Tree",
		Keywords: []string{"bst", "binary search tree", "kth smallest element in a bst"},
		Topics:   []string{"binary search tree"},
	},
	{
		Name:     "Two Heaps",
		Keywords: []string{"median", "ipo", "maximize capital"},
		Topics:   []string{"two heaps"},
	},
	{
		Name:     "Heap/Priority Queue",
		Keywords: []string{"kth largest", "median", "priority queue", "heap", "last stone weight", "k closest points", "task scheduler"},
		Topics:   []string{"heap", "priority queue"},
	},
	{
		Name:     "Subsets",
		Keywords: []string{"subset", "permutation", "power set", "letter case"},
		Topics:   []string{"subsets"},
	},
	{
		Name:     "Backtracking",
		Keywords: []string{"backtrack", "n-queens", "sudoku", "word search", "combination sum", "generate parentheses", "palindrome partitioning", "letter combinations"},
		Topics:   []string{"backtracking", "recursion"},
	},
	{
		Name:     "Modified Binary Search",
		Keywords: []string{"binary search", "rotated sorted", "search insert", "find peak", "sqrt", "first and last position", "search a 2d matrix", "koko eating bananas", "minimum in rotated"},
		Topics:   []string{"binary search"},
	},
	{
		Name:     "Bitwise XOR",
		Keywords: []string{"xor", "single number", "bitwise", "counting bits", "number of 1 bits", "reverse bits", "power of two", "sum of two integers"},
		Topics:   []string{"bit manipulation"},
	},
	{
		Name:     "Top 'K' Elements",
		Keywords: []string{"top k", "kth largest", "k closest", "most frequent", "frequency sort", "k frequent"},
		Topics:   []string{"top k elements"},
	},
	{
		Name:     "K-way Merge",
		Keywords: []string{"merge k", "k sorted", "smallest range covering", "sorted matrix"},
		Topics:   []string{"k-way merge"},
	},
	{
		Name:     "Topological Sort",
		Keywords: []string{"course schedule", "alien dictionary", "prerequisite", "topological", "minimum height trees", "sequence reconstruction"},
		Topics:   []string{"topological sort"},
	},
	{
		Name:     "Graph Traversal",
		Keywords: []string{"graph", "island", "connected components", "flood fill", "rotting oranges", "word ladder", "pacific atlantic", "surrounded regions"},
		Topics:   []string{"graph", "matrix traversal"},
	},
	{
		Name:     "Union Find",
		Keywords: []string{"union find", "disjoint", "redundant connection", "accounts merge", "number of provinces", "graph valid tree"},
		Topics:   []string{"union find", "disjoint set"},
	},
	{
		Name:     "Shortest Path",
		Keywords: []string{"dijkstra", "shortest path", "network delay", "cheapest flights", "bellman", "minimum effort"},
		Topics:   []string{"shortest path"},
	},
	{
		Name:     "Dynamic Programming",
		Keywords: []string{"climbing stairs", "house robber", "coin change", "longest increasing subsequence", "longest common subsequence", "edit distance", "knapsack", "decode ways", "unique paths", "partition equal subset", "word break", "maximum product subarray"},
		Topics:   []string{"dynamic programming"},
	},
	{
		Name:     "Greedy",
		Keywords: []string{"greedy", "jump game", "gas station", "partition labels", "minimum number of arrows", "hand of straights", "candy"},
		Topics:   []string{"greedy"},
	},
	{
		Name:     "Monotonic Stack",
		Keywords: []string{"next greater", "daily temperatures", "largest rectangle", "stock span", "trapping rain water", "monotonic", "car fleet"},
		Topics:   []string{"monotonic stack"},
	},
	{
		Name:     "Stack",
		Keywords: []string{"stack", "valid parentheses", "reverse polish", "decode string", "asteroid collision"},
		Topics:   []string{"stack"},
	},
	{
		Name:     "Trie",
		Keywords: []string{"trie", "prefix tree", "word dictionary", "autocomplete", "search suggestions"},
		Topics:   []string{"trie"},
	},
	{
		Name:     "Hashing",
		Keywords: []string{"anagram", "two sum", "contains duplicate", "hash", "longest consecutive sequence", "isomorphic"},
		Topics:   []string{"hashing", "hash table", "hash map"},
	},
	{
		Name:     "Prefix Sum",
		Keywords: []string{"prefix sum", "range sum", "subarray sum equals", "product of array except self", "pivot index"},
		Topics:   []string{"prefix sum"},
	},
	{
		Name:     "Matrix",
		Keywords: []string{"matrix", "spiral", "rotate image", "set matrix zeroes", "valid sudoku", "game of life"},
		Topics:   []string{"matrix"},
	},
	{
		Name:     "Math & Geometry",
		Keywords: []string{"pow(x", "reverse integer", "palindrome number", "plus one", "multiply strings", "detect squares", "count primes"},
		Topics:   []string{"math", "geometry"},
	},
	{
		Name:     "Design",
		Keywords: []string{"design", "lru cache", "implement", "iterator", "serialize", "time based key-value"},
		Topics:   []string{"design"},
	},
}

// Definitions returns a copy of the built-in pattern table in table order.
func Definitions() []PatternDefinition {
	out := make([]PatternDefinition, len(definitions))
	for i, d := range definitions {
		out[i] = PatternDefinition{
			Name:     d.Name,
			Keywords: append([]string(nil), d.Keywords...),
			Topics:   append([]string(nil), d.Topics...),
		}
	}
	return out
}

// Names lists pattern names in table order.
func Names() []string {
	out := make([]string, len(definitions))
	for i, d := range definitions {
		out[i] = d.Name
	}
	return out
}
