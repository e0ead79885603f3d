package suite

import "fmt"

func contains(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}

func asMatrix(v interface{}) ([][]string, bool) {
	m, ok := v.([][]string)
	return m, ok
}

func asWords(v interface{}) ([]string, bool) {
	w, ok := v.([]string)
	return w, ok
}

func Register(add func(name, description string, run func(call func(name string, args ...interface{}) (interface{}, error)) (string, error))) {
	add("load_matrix_invalid_row", "LoadMatrix retorna una matriz vacía si rows <= 0", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		got, err := call("LoadMatrix", 0, 3)
		if err != nil {
			return "", err
		}
		matrix, ok := asMatrix(got)
		if !ok {
			return fmt.Sprintf("LoadMatrix retornó %T, se esperaba [][]string", got), nil
		}
		if len(matrix) != 0 {
			return "se esperaba una matriz vacía para 0 filas", nil
		}
		return "", nil
	})

	add("load_matrix_invalid_col", "LoadMatrix retorna una matriz vacía si cols <= 0", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		got, err := call("LoadMatrix", 2, 0)
		if err != nil {
			return "", err
		}
		matrix, ok := asMatrix(got)
		if !ok {
			return fmt.Sprintf("LoadMatrix retornó %T, se esperaba [][]string", got), nil
		}
		if len(matrix) != 0 {
			return "se esperaba una matriz vacía para 0 columnas", nil
		}
		return "", nil
	})

	add("find_palindromes_found", "FindPalindromes detecta todas las palabras palíndromas", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		got, err := call("FindPalindromes", [][]string{{"ana", "test"}, {"noon", "abc"}})
		if err != nil {
			return "", err
		}
		words, ok := asWords(got)
		if !ok {
			return fmt.Sprintf("FindPalindromes retornó %T, se esperaba []string", got), nil
		}
		if len(words) != 2 || !contains(words, "ana") || !contains(words, "noon") {
			return fmt.Sprintf("se esperaban los palíndromos [ana noon], se obtuvo %v", words), nil
		}
		return "", nil
	})

	add("find_palindromes_not_found", "FindPalindromes no reporta nada sin palíndromos", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		got, err := call("FindPalindromes", [][]string{{"abc", "def"}, {"ghi", "jkl"}})
		if err != nil {
			return "", err
		}
		words, ok := asWords(got)
		if !ok {
			return fmt.Sprintf("FindPalindromes retornó %T, se esperaba []string", got), nil
		}
		if len(words) != 0 {
			return fmt.Sprintf("no había palíndromos, se obtuvo %v", words), nil
		}
		return "", nil
	})

	add("longest_word", "LongestWord encuentra la palabra con más caracteres", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		got, err := call("LongestWord", [][]string{{"hi", "hello"}, {"test", "longestword"}})
		if err != nil {
			return "", err
		}
		if got != "longestword" {
			return fmt.Sprintf("la palabra con más caracteres es longestword, se obtuvo %v", got), nil
		}
		return "", nil
	})

	add("duplicated_words", "DuplicatedWords reporta las palabras repetidas", func(call func(name string, args ...interface{}) (interface{}, error)) (string, error) {
		got, err := call("DuplicatedWords", [][]string{{"dup", "unique"}, {"dup", "another"}})
		if err != nil {
			return "", err
		}
		words, ok := asWords(got)
		if !ok {
			return fmt.Sprintf("DuplicatedWords retornó %T, se esperaba []string", got), nil
		}
		if !contains(words, "dup") {
			return fmt.Sprintf("la palabra duplicada es dup, se obtuvo %v", words), nil
		}
		return "", nil
	})
}
