package analytics

import "strings"

// stopwordList holds words dropped from word clouds. Tokens shorter than
// three characters are discarded before lookup, so two-letter words are not
// listed.
var stopwordList = []string{
	// function words
	"about", "above", "across", "after", "afterwards", "again", "against", "all",
	"almost", "alone", "along", "already", "also", "although", "always", "among",
	"amongst", "amount", "and", "another", "any", "anyhow", "anyone", "anything",
	"anyway", "anywhere", "are", "around",
	"back", "became", "because", "become", "becomes", "becoming", "been", "before",
	"beforehand", "behind", "being", "below", "beside", "besides", "between",
	"beyond", "both", "but",
	"can", "cannot", "could",
	"did", "does", "doing", "done", "down", "during",
	"each", "either", "else", "elsewhere", "enough", "entirely", "especially",
	"etc", "even", "ever", "every", "everyone", "everything", "everywhere",
	"few", "for", "former", "formerly", "from", "further",
	"had", "has", "have", "having", "hence", "her", "here", "hereafter", "hereby",
	"herein", "hereupon", "hers", "herself", "him", "himself", "his", "how",
	"however",
	"indeed", "into", "its", "itself",
	"just", "keep",
	"last", "latter", "latterly", "least", "less", "let", "like", "likely",
	"made", "make", "many", "may", "maybe", "meanwhile", "might", "mine", "more",
	"moreover", "most", "mostly", "much", "must", "myself",
	"neither", "never", "nevertheless", "next", "nobody", "none", "noone", "nor",
	"not", "nothing", "now", "nowhere",
	"off", "often", "once", "one", "only", "onto", "other", "others", "otherwise",
	"our", "ours", "ourselves", "out", "over", "own",
	"part", "per", "perhaps", "please", "put",
	"rather", "same", "see", "seem", "seemed", "seeming", "seems", "several",
	"she", "should", "since", "some", "somehow", "someone", "something",
	"sometime", "sometimes", "somewhere", "still", "such",
	"take", "than", "that", "the", "their", "theirs", "them", "themselves", "then",
	"thence", "there", "thereafter", "thereby", "therefore", "therein",
	"thereupon", "these", "they", "this", "those", "through", "throughout", "thru",
	"thus", "together", "too", "toward", "towards",
	"under", "until", "upon", "use",
	"very", "via",
	"was", "well", "were", "what", "whatever", "when", "whence", "whenever",
	"where", "whereafter", "whereas", "whereby", "wherein", "whereupon",
	"wherever", "whether", "which", "while", "whither", "who", "whoever", "whose",
	"why", "with", "within", "without", "would",
	"yet", "you", "your", "yours", "yourself", "yourselves",

	// contraction stems left behind when tokenizing on apostrophes
	"ain", "aren", "couldn", "didn", "doesn", "don", "hadn", "hasn", "haven",
	"isn", "mustn", "shan", "shouldn", "wasn", "weren", "won", "wouldn",

	// comment and link noise
	"amp", "com", "deleted", "edit", "gt", "http", "https", "lol", "removed",
	"reddit", "www",
}

var commonWords = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopword checks if a word is a common stopword that should be filtered out.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}
