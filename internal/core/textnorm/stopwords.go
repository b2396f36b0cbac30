package textnorm

// Bundled stop-word lists. The detector ships English and Indonesian,
// matching the language pair the comparison pipeline was tuned on.
var stopwordLists = map[string][]string{
	"english": {
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"herself", "him", "himself", "his", "how", "i", "if", "in", "into",
		"is", "it", "its", "itself", "just", "me", "more", "most", "my",
		"myself", "no", "nor", "not", "now", "of", "off", "on", "once", "only",
		"or", "other", "our", "ours", "ourselves", "out", "over", "own",
		"same", "she", "should", "so", "some", "such", "than", "that", "the",
		"their", "theirs", "them", "themselves", "then", "there", "these",
		"they", "this", "those", "through", "to", "too", "under", "until",
		"up", "very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "you", "your", "yours",
		"yourself", "yourselves",
	},
	"indonesian": {
		"ada", "adalah", "agar", "akan", "aku", "antara", "apa", "atau",
		"bagi", "bahwa", "banyak", "belum", "bisa", "bukan", "dalam", "dan",
		"dapat", "dari", "dengan", "di", "dia", "hanya", "harus", "hingga",
		"ia", "ini", "itu", "jika", "juga", "kami", "kamu", "karena", "ke",
		"kepada", "kita", "lagi", "lain", "lebih", "maka", "masih", "mereka",
		"namun", "oleh", "pada", "para", "saat", "saja", "sangat", "saya",
		"sebagai", "sebuah", "sedang", "segala", "sehingga", "semua",
		"seperti", "serta", "sudah", "supaya", "tanpa", "telah", "tentang",
		"terhadap", "tersebut", "tetapi", "tidak", "untuk", "yaitu", "yang",
	},
}

func stopwordSet(languages []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, lang := range languages {
		for _, word := range stopwordLists[lang] {
			set[word] = struct{}{}
		}
	}
	return set
}
