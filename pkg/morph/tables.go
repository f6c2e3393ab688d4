package morph

// ============================================================================
// Irregular Forms
// ============================================================================

// verbForms holds the past tense and past participle of an irregular verb.
type verbForms struct {
	Past       string
	Participle string
}

// irregularVerbs maps base form -> irregular past / participle.
// The lemmatizer's verb exceptions are derived from this table.
var irregularVerbs = map[string]verbForms{
	"arise":  {"arose", "arisen"},
	"awake":  {"awoke", "awoken"},
	"be":     {"was", "been"},
	"bear":   {"bore", "borne"},
	"beat":   {"beat", "beaten"},
	"become": {"became", "become"},
	"begin":  {"began", "begun"},
	"bend":   {"bent", "bent"},
	"bet":    {"bet", "bet"},
	"bind":   {"bound", "bound"},
	"bite":   {"bit", "bitten"},
	"bleed":  {"bled", "bled"},
	"blow":   {"blew", "blown"},
	"break":  {"broke", "broken"},
	"breed":  {"bred", "bred"},
	"bring":  {"brought", "brought"},
	"build":  {"built", "built"},
	"burst":  {"burst", "burst"},
	"buy":    {"bought", "bought"},
	"catch":  {"caught", "caught"},
	"choose": {"chose", "chosen"},
	"cling":  {"clung", "clung"},
	"come":   {"came", "come"},
	"cost":   {"cost", "cost"},
	"creep":  {"crept", "crept"},
	"cut":    {"cut", "cut"},
	"deal":   {"dealt", "dealt"},
	"dig":    {"dug", "dug"},
	"do":     {"did", "done"},
	"draw":   {"drew", "drawn"},
	"drink":  {"drank", "drunk"},
	"drive":  {"drove", "driven"},
	"eat":    {"ate", "eaten"},
	"fall":   {"fell", "fallen"},
	"feed":   {"fed", "fed"},
	"feel":   {"felt", "felt"},
	"fight":  {"fought", "fought"},
	"find":   {"found", "found"},
	"flee":   {"fled", "fled"},
	"fly":    {"flew", "flown"},
	"forbid": {"forbade", "forbidden"},
	"forget": {"forgot", "forgotten"},
	"freeze": {"froze", "frozen"},
	"get":    {"got", "gotten"},
	"give":   {"gave", "given"},
	"go":     {"went", "gone"},
	"grind":  {"ground", "ground"},
	"grow":   {"grew", "grown"},
	"hang":   {"hung", "hung"},
	"have":   {"had", "had"},
	"hear":   {"heard", "heard"},
	"hide":   {"hid", "hidden"},
	"hit":    {"hit", "hit"},
	"hold":   {"held", "held"},
	"hurt":   {"hurt", "hurt"},
	"keep":   {"kept", "kept"},
	"kneel":  {"knelt", "knelt"},
	"know":   {"knew", "known"},
	"lay":    {"laid", "laid"},
	"lead":   {"led", "led"},
	"leave":  {"left", "left"},
	"lend":   {"lent", "lent"},
	"let":    {"let", "let"},
	"lie":    {"lay", "lain"},
	"light":  {"lit", "lit"},
	"lose":   {"lost", "lost"},
	"make":   {"made", "made"},
	"mean":   {"meant", "meant"},
	"meet":   {"met", "met"},
	"pay":    {"paid", "paid"},
	"put":    {"put", "put"},
	"quit":   {"quit", "quit"},
	"read":   {"read", "read"},
	"ride":   {"rode", "ridden"},
	"ring":   {"rang", "rung"},
	"rise":   {"rose", "risen"},
	"run":    {"ran", "run"},
	"say":    {"said", "said"},
	"see":    {"saw", "seen"},
	"seek":   {"sought", "sought"},
	"sell":   {"sold", "sold"},
	"send":   {"sent", "sent"},
	"set":    {"set", "set"},
	"shake":  {"shook", "shaken"},
	"shine":  {"shone", "shone"},
	"shoot":  {"shot", "shot"},
	"show":   {"showed", "shown"},
	"shut":   {"shut", "shut"},
	"sing":   {"sang", "sung"},
	"sink":   {"sank", "sunk"},
	"sit":    {"sat", "sat"},
	"sleep":  {"slept", "slept"},
	"slide":  {"slid", "slid"},
	"speak":  {"spoke", "spoken"},
	"spend":  {"spent", "spent"},
	"spin":   {"spun", "spun"},
	"split":  {"split", "split"},
	"spread": {"spread", "spread"},
	"spring": {"sprang", "sprung"},
	"stand":  {"stood", "stood"},
	"steal":  {"stole", "stolen"},
	"stick":  {"stuck", "stuck"},
	"sting":  {"stung", "stung"},
	"stink":  {"stank", "stunk"},
	"strike": {"struck", "struck"},
	"swear":  {"swore", "sworn"},
	"sweep":  {"swept", "swept"},
	"swim":   {"swam", "swum"},
	"swing":  {"swung", "swung"},
	"take":   {"took", "taken"},
	"teach":  {"taught", "taught"},
	"tear":   {"tore", "torn"},
	"tell":   {"told", "told"},
	"think":  {"thought", "thought"},
	"throw":  {"threw", "thrown"},
	"wake":   {"woke", "woken"},
	"wear":   {"wore", "worn"},
	"weep":   {"wept", "wept"},
	"win":    {"won", "won"},
	"wind":   {"wound", "wound"},
	"write":  {"wrote", "written"},
}

// presentForms covers verbs whose present tense is irregular.
var presentForms = map[string]struct{ Third, Plural string }{
	"be":   {"is", "are"},
	"have": {"has", "have"},
	"do":   {"does", "do"},
	"go":   {"goes", "go"},
}

// irregularPlurals maps singular -> plural for nouns that don't take -s/-es.
var irregularPlurals = map[string]string{
	"calf":       "calves",
	"child":      "children",
	"criterion":  "criteria",
	"elf":        "elves",
	"foot":       "feet",
	"goose":      "geese",
	"half":       "halves",
	"knife":      "knives",
	"leaf":       "leaves",
	"life":       "lives",
	"loaf":       "loaves",
	"louse":      "lice",
	"man":        "men",
	"mouse":      "mice",
	"ox":         "oxen",
	"person":     "people",
	"phenomenon": "phenomena",
	"self":       "selves",
	"shelf":      "shelves",
	"thief":      "thieves",
	"tooth":      "teeth",
	"wife":       "wives",
	"wolf":       "wolves",
	"woman":      "women",
	"dwarf":      "dwarves",
	"hero":       "heroes",
	"potato":     "potatoes",
	"tomato":     "tomatoes",
	"echo":       "echoes",
}

// invariantNouns have identical singular and plural forms.
var invariantNouns = map[string]bool{
	"sheep": true, "fish": true, "deer": true, "series": true, "species": true,
	"aircraft": true, "moose": true, "salmon": true, "trout": true, "news": true,
}

// comparison holds irregular comparative / superlative forms.
type comparison struct {
	Comparative string
	Superlative string
}

var irregularAdjectives = map[string]comparison{
	"good":   {"better", "best"},
	"bad":    {"worse", "worst"},
	"far":    {"farther", "farthest"},
	"little": {"less", "least"},
	"many":   {"more", "most"},
	"much":   {"more", "most"},
	"ill":    {"worse", "worst"},
}

var irregularAdverbs = map[string]comparison{
	"well":  {"better", "best"},
	"badly": {"worse", "worst"},
	"far":   {"farther", "farthest"},
	"much":  {"more", "most"},
	"early": {"earlier", "earliest"},
}

// baseForms look inflected but are already base forms; suffix rules skip them.
var baseForms = map[string]bool{
	"a": true, "an": true, "the": true, "this": true, "that": true, "these": true,
	"those": true, "his": true, "hers": true, "its": true, "ours": true, "yours": true,
	"theirs": true, "is": true, "was": true, "has": true, "does": true, "us": true,
	"as": true, "yes": true, "thus": true, "always": true, "perhaps": true,
	"towards": true, "less": true, "unless": true, "across": true, "whereas": true,
	"during": true, "nothing": true, "something": true, "anything": true,
	"everything": true, "morning": true, "evening": true, "thing": true, "king": true,
	"ring": true, "sing": true, "bring": true, "string": true, "spring": true,
	"wing": true, "swing": true, "sting": true, "ceiling": true, "red": true,
	"bed": true, "shed": true, "need": true, "seed": true, "feed": true, "speed": true,
	"bleed": true, "breed": true, "creed": true, "weed": true, "hundred": true,
	"sacred": true, "naked": true, "wicked": true, "tired": true, "clever": true,
	"bitter": true, "tender": true, "proper": true, "silver": true, "sober": true,
	"eager": true, "other": true, "former": true, "upper": true, "inner": true,
	"outer": true, "utter": true, "latter": true, "modest": true, "honest": true,
	"weather": true, "water": true, "never": true, "ever": true, "over": true,
	"under": true, "after": true, "forest": true, "interest": true,
}
