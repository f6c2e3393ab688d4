package tagger

// auxiliaries are the forms of have and be that select a participle.
var auxiliaries = map[string]bool{
	"have": true, "has": true, "had": true, "having": true, "'ve": true, "'d": true,
	"be": true, "is": true, "are": true, "was": true, "were": true, "been": true,
	"being": true, "am": true, "'re": true, "'m": true, "'s": true,
	"get": true, "got": true, "gets": true, "gotten": true,
}

func isPronoun(w string) bool {
	return singularSubject(w) || pluralSubject(w) || w == "there" || w == "that" ||
		w == "what" || w == "who" || w == "where" || w == "here" || w == "let"
}

func singularSubject(w string) bool {
	return w == "he" || w == "she" || w == "it"
}

func pluralSubject(w string) bool {
	return w == "i" || w == "you" || w == "we" || w == "they"
}

func (t *Tagger) loadDefaultLexicon() {
	// Determiners
	for _, w := range []string{"the", "a", "an", "this", "that", "these", "those", "some", "any",
		"no", "every", "each", "all", "both", "either", "neither", "another", "such", "half"} {
		t.closed[w] = DT
	}

	// Possessive pronouns
	for _, w := range []string{"my", "your", "his", "its", "our", "their", "whose"} {
		t.closed[w] = PRPS
	}

	// Prepositions and subordinators
	for _, w := range []string{"in", "on", "at", "for", "with", "by", "from", "of", "about",
		"into", "through", "during", "before", "after", "above", "below", "between", "under", "over",
		"against", "among", "around", "behind", "beside", "beyond", "near", "toward", "towards",
		"upon", "within", "without", "across", "along", "inside", "outside", "throughout",
		"because", "although", "though", "while", "if", "unless", "until", "since", "whether",
		"than", "like", "as", "per", "via", "onto"} {
		t.closed[w] = IN
	}
	t.closed["to"] = TO

	// Coordinators
	for _, w := range []string{"and", "or", "but", "nor", "yet", "plus"} {
		t.closed[w] = CC
	}

	// Auxiliaries
	for w, tag := range map[string]Tag{
		"is": VBZ, "are": VBP, "am": VBP, "was": VBD, "were": VBD, "be": VB,
		"been": VBN, "being": VBG, "has": VBZ, "have": VBP, "had": VBD, "having": VBG,
		"does": VBZ, "do": VBP, "did": VBD, "doing": VBG,
		"'re": VBP, "'m": VBP, "'ve": VBP, "'ll": MD, "'d": MD,
	} {
		t.closed[w] = tag
	}

	// Modals (ca and wo are the hosts of can't and won't)
	for _, w := range []string{"can", "could", "will", "would", "shall", "should", "may",
		"might", "must", "ca", "wo", "sha"} {
		t.closed[w] = MD
	}

	// Pronouns
	for _, w := range []string{"i", "you", "he", "she", "it", "we", "they", "me", "him", "us",
		"them", "myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves",
		"mine", "yours", "hers", "ours", "theirs", "someone", "somebody", "something", "anyone",
		"anybody", "anything", "everyone", "everybody", "everything", "nobody", "nothing"} {
		t.closed[w] = PRP
	}
	// "her" is PRP or PRP$; take PRP$
	t.closed["her"] = PRPS

	// Wh-words
	for w, tag := range map[string]Tag{
		"which": WDT, "what": WP, "who": WP, "whom": WP,
		"when": WRB, "where": WRB, "why": WRB, "how": WRB,
	} {
		t.closed[w] = tag
	}
	t.closed["there"] = EX

	// Particles, negation, interjections
	for _, w := range []string{"not", "n't", "never", "also", "very", "too", "so", "just",
		"only", "even", "still", "already", "always", "often", "sometimes", "usually", "now",
		"then", "here", "again", "ever", "soon", "maybe", "perhaps", "quite", "rather", "almost",
		"really", "once", "indeed", "else", "away", "back", "together"} {
		t.closed[w] = RB
	}
	for _, w := range []string{"oh", "ah", "hey", "hi", "hello", "wow", "yes", "ok", "okay",
		"please", "thanks", "oops", "yeah"} {
		t.closed[w] = UH
	}

	// Graded forms with irregular stems
	for w, tag := range map[string]Tag{
		"better": JJR, "best": JJS, "worse": JJR, "worst": JJS, "more": JJR, "most": JJS,
		"less": JJR, "least": JJS, "further": JJR, "furthest": JJS, "farther": RBR,
	} {
		t.open[w] = tag
	}

	// Common adjectives
	for _, w := range []string{"old", "new", "good", "bad", "great", "small", "large", "big", "little",
		"young", "long", "short", "high", "low", "early", "late", "first", "last", "ancient", "dark",
		"bright", "wise", "evil", "grey", "gray", "black", "white", "red", "blue", "green", "golden",
		"silver", "happy", "sad", "nice", "fine", "hot", "cold", "warm", "cool", "sunny", "rainy",
		"wet", "dry", "fast", "slow", "hard", "soft", "easy", "simple", "strong", "weak", "rich",
		"poor", "clean", "dirty", "pretty", "ugly", "lovely", "friendly", "silly", "likely",
		"real", "true", "false", "full", "empty", "whole", "other", "same", "different", "own",
		"many", "much", "few", "several", "clever", "quiet", "loud", "kind", "brave", "busy",
		"funny", "angry", "tiny", "huge", "wide", "deep", "heavy", "light", "free", "sure",
		"ready", "right", "wrong", "able", "main", "important", "possible", "open", "close"} {
		t.open[w] = JJ
	}

	// Common adverbs
	for _, w := range []string{"well", "later", "fast", "hardly", "quickly", "slowly",
		"suddenly", "finally", "far"} {
		if _, ok := t.open[w]; !ok {
			t.open[w] = RB
		}
	}
	// Treebank tags the deictic day words as nouns
	for _, w := range []string{"today", "tomorrow", "yesterday", "tonight"} {
		t.open[w] = NN
	}

	// Common verbs
	for w, tag := range map[string]Tag{
		"go": VB, "went": VBD, "gone": VBN, "goes": VBZ, "come": VB, "came": VBD,
		"say": VB, "said": VBD, "says": VBZ, "see": VB, "saw": VBD, "seen": VBN,
		"know": VB, "knew": VBD, "known": VBN, "take": VB, "took": VBD, "taken": VBN,
		"get": VB, "got": VBD, "gotten": VBN, "make": VB, "made": VBD, "give": VB,
		"gave": VBD, "given": VBN, "think": VB, "thought": VBD, "tell": VB, "told": VBD,
		"find": VB, "found": VBD, "sit": VB, "sat": VBD, "eat": VB, "ate": VBD,
		"eaten": VBN, "write": VB, "wrote": VBD, "written": VBN, "speak": VB, "spoke": VBD,
		"spoken": VBN, "run": VB, "ran": VBD, "walk": VB, "live": VB, "love": VB,
		"hate": VB, "want": VB, "need": VB, "feel": VB, "felt": VBD,
		"leave": VB, "left": VBD, "bring": VB, "brought": VBD, "buy": VB, "bought": VBD,
		"begin": VB, "began": VBD, "begun": VBN, "keep": VB, "kept": VBD, "hold": VB,
		"held": VBD, "stand": VB, "stood": VBD, "hear": VB, "heard": VBD, "let": VB,
		"mean": VB, "meant": VBD, "meet": VB, "met": VBD, "pay": VB, "paid": VBD,
		"send": VB, "sent": VBD, "sing": VB, "sang": VBD, "sung": VBN, "swim": VB,
		"swam": VBD, "fly": VB, "flew": VBD, "flown": VBN, "drive": VB, "drove": VBD,
		"driven": VBN, "break": VB, "broke": VBD, "broken": VBN, "choose": VB, "chose": VBD,
		"chosen": VBN, "forget": VB, "forgot": VBD, "forgotten": VBN, "wear": VB, "wore": VBD,
		"worn": VBN, "sleep": VB, "slept": VBD, "win": VB, "won": VBD, "lose": VB,
		"lost": VBD, "become": VB, "became": VBD, "put": VB, "try": VB, "ask": VB,
		"use": VB, "work": VB, "call": VB, "help": VB, "play": VB, "move": VB,
		"show": VB, "start": VB, "stop": VB, "look": VB, "seem": VB, "turn": VB,
		"feed": VB, "fed": VBD, "read": VB, "fall": VB, "fell": VBD, "fallen": VBN,
		"grow": VB, "grew": VBD, "grown": VBN, "draw": VB, "drew": VBD, "drawn": VBN,
		"shine": VB, "shone": VBD, "bark": VB, "attack": VB,
	} {
		t.open[w] = tag
	}

	// Common nouns, including words the suffix heuristics would mistag
	for _, w := range []string{"thing", "king", "ring", "spring", "string", "morning", "evening",
		"ceiling", "wing", "swing", "building", "meeting", "feeling", "wedding", "pudding",
		"bed", "seed", "speed", "weed", "deed", "shed", "sled", "family", "reply", "belly",
		"jelly", "rally", "ally", "bully", "lily", "holly", "time", "day", "year", "way",
		"man", "woman", "child", "world", "life", "hand", "part", "place", "case",
		"week", "word", "fact", "home", "water", "room", "mother", "father", "brother",
		"sister", "dog", "cat", "mouse", "bird", "fish", "house", "car", "book", "weather",
		"forest", "interest", "test", "rest", "guest", "nest", "chest", "west", "east",
		"north", "south", "wizard", "dragon", "sword", "castle", "tower", "news", "series",
		"tea", "coffee", "sun", "rain", "snow", "wind", "sky", "tree", "flower", "city"} {
		t.open[w] = NN
	}

	// Irregular plurals
	for _, w := range []string{"people", "men", "women", "children", "mice", "geese", "feet",
		"teeth", "oxen", "lice", "data", "cattle"} {
		t.open[w] = NNS
	}
}
