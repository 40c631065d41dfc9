package terms

type seedTerm struct {
	English string
	Zulu    string
}

// seedTerms is the built-in English -> isiZulu term table, loaded on first
// open. Later duplicates overwrite earlier ones.
var seedTerms = []seedTerm{
	// Abbreviations and honorifics
	{"dr", "udkt"},
	{"dr.", "udkt"},
	{"doctor", "udokotela"},
	{"prof", "uslz"},
	{"prof.", "uslz"},
	{"professor", "usolwazi"},
	{"mr", "mnu"},
	{"mr.", "mnu"},
	{"mister", "mnumzane"},
	{"mrs", "nkz"},
	{"mrs.", "nkz"},
	{"miss", "nkz"},
	{"ms", "nkz"},
	{"ms.", "nkz"},

	// Title abbreviations
	{"dept", "umnyango"},
	{"dept.", "umnyango"},
	{"department", "umnyango"},
	{"dir", "umqondisi"},
	{"dir.", "umqondisi"},
	{"director", "umqondisi"},
	{"chair", "usihlalo"},
	{"chairperson", "usihlalo"},
	{"coord", "umxhumanisi"},
	{"coord.", "umxhumanisi"},
	{"coordinator", "umxhumanisi"},

	// Organization abbreviations
	{"ukzn", "i-ukzn"},
	{"ulpd", "i-ulpd"},
	{"ulpdo", "i-ulpdo"},
	{"kznplc", "i-kznplc"},
	{"iso", "i-iso"},

	// Time abbreviations
	{"h", "h"},
	{"hr", "ihora"},
	{"hrs", "amahora"},
	{"hrs.", "amahora"},
	{"min", "imizuzu"},
	{"mins", "imizuzu"},
	{"min.", "imizuzu"},
	{"am", "ekuseni"},
	{"pm", "ntambama"},

	// Programme specific abbreviations
	{"q & a", "imibuzo nezimpendulo"},
	{"q&a", "imibuzo nezimpendulo"},
	{"registration and tea", "ukubhalisa netiye"},
	{"comfort break", "ikhefu lokuzelula"},
	{"closing remarks", "amazwi okuvala"},
	{"vote of thanks", "amazwi okubonga"},
	{"lunch and departure", "isidlo sasemini nokugoduka"},

	// Workshop and conference terms
	{"workshop", "inkuthazakwenza"},
	{"workshop on", "inkuthazakwenza ye"},
	{"language standardisation", "ukuvamisa ulimi"},
	{"standardisation", "ukuvamisa"},
	{"language", "ulimi"},
	{"date", "mhla"},
	{"day", "usuku"},
	{"time", "isikhathi"},
	{"activity", "okwenziwayo"},
	{"person responsible", "umuntu okenzayo"},
	{"persons responsible", "abantu abakenzayo"},

	// Schedule and activity terms
	{"registration", "ukubhalisa"},
	{"tea", "itiye"},
	{"opening remarks", "amazwi okuvula"},
	{"welcome address", "inkulumo yokwamukela"},
	{"introduction", "ukwethulwa"},
	{"facilitators", "abethulisifundo"},
	{"facilitator", "mthulisifundo"},
	{"process", "inqubo"},
	{"break", "ikhefu"},
	{"lunch", "isidlo sasemini"},
	{"lunch break", "ikhefu lesidlo sasemini"},
	{"departure", "ukugoduka"},
	{"departure and lunch", "isidlo sasemini nokugoduka"},

	// Materials development terms
	{"materials development", "ukusungula nokuthuthukisa izinsizakufundisa"},
	{"materials", "izinsizakufundisa"},
	{"development workshop", "inkuthazakwenza yokuthuthukisa"},
	{"invigorating", "ukuvuselela"},
	{"african languages", "izilimi zase-afrika"},
	{"university glossaries", "uhlumatemu lwezilimi emanyuvesi"},
	{"glossaries", "uhlumatemu lwezilimi"},
	{"glossary", "uhlumatelu lwolimi"},
	{"concept development", "ukuthuthukiswa komqondomsuka"},
	{"concepts", "imiqondomsuka"},
	{"ukzn specific", "ezise-ukzn"},
	{"foundational concepts", "imiqondomsuka eyisisekelo"},
	{"foundational", "eyisisekelo"},
	{"series", "uchungechunge"},

	// Academic context terms
	{"select a discipline", "sikhetha umkhakha"},
	{"discipline", "umkhakha"},
	{"identify key foundational concepts", "sihlonze imiqondomsuka ebalulekile neyisisekelo"},
	{"key concepts", "imiqondomsuka ebalulekile"},
	{"year 1 undergraduate", "bafundi abenza unyaka wokuqala enyuvesi"},
	{"undergraduate", "bafundi benyuvesi"},
	{"year 1", "unyaka wokuqala"},
	{"how to communicate", "sixhumana kanjani"},
	{"communicate", "sixhumana"},
	{"target audience", "izethameli ezihlosiwe"},
	{"audience", "izethameli"},
	{"target", "ezihlosiwe"},
	{"convey concepts", "ukuyidlulisela imiqondomsuka"},
	{"convey", "ukudlulisela"},
	{"beyond terminology", "asigcini ngokuqamba nje kuphela"},
	{"terminology", "ukuqamba"},
	{"to communication", "ekuxhumaneni"},
	{"communication", "ukuxhumana"},

	// Visual design terms
	{"visual language", "ulimi lohlelokuxhumana ngokwezimpawu"},
	{"visual", "ngokwezimpawu"},
	{"instructional designer", "umklami wezinsizakufundisa"},
	{"instructional design", "ukuklama izinsizakufundisa"},
	{"graphic designer", "umklamimidwebo"},
	{"graphic design", "ukuklama imidwebo"},
	{"identify a visual language", "ngokuhlonza ulimi lohlelokuxhumana ngokwezimpawu"},
	{"convey what we want", "lwalokho esikulindele"},
	{"concept and the visual", "umqondomsuka nezimpawu"},
	{"produce a basic example", "sizokwenza isibonelo esisobala"},
	{"basic example", "isibonelo esisobala"},
	{"visual and text", "izimpawu nombhalo"},
	{"text", "umbhalo"},

	// Day 2 and process terms
	{"further development", "ukuqhubeka nokuthuthukiswa"},
	{"further", "ukuqhubeka"},
	{"review and reflection", "ukubuyekeza nokuphawula ngomsebenzi owenziwe"},
	{"review", "ukubuyekeza"},
	{"reflection", "okuphawula ngomsebenzi owenziwe"},
	{"work done", "ngomsebenzi owenziwe"},

	// Linguistics and standardization
	{"standardisation process", "inqubo yokuvamisa"},
	{"politics of standardisation", "ipolitiki yohlelo lokuvamisa"},
	{"politics", "ipolitiki"},
	{"iso standards", "amaqophelomvama e-iso"},
	{"standards", "amaqophelomvama"},
	{"terminology development", "ukuqanjwa kwamatemu"},
	{"development", "ukuqanjwa"},
	{"indigenous languages", "izilimi zomdabu"},
	{"indigenous", "zomdabu"},
	{"linguistic challenging", "ucwaningozilimu luphosela inselelo"},
	{"linguistic", "locwaningozilimu"},
	{"sociology of standards", "isifundonhlalobantu ngokwamaqophelomvama"},
	{"sociology", "isifundonhlalobantu"},
	{"best practices", "izindlelanhle"},
	{"practices", "izindlelanhle"},
	{"morpho-syntactic annotations", "izingcaciso ngokwezakhiwomagama nangokohlelomisho"},
	{"morpho-syntactic", "ngokwezakhiwomagama nangokohlelomisho"},
	{"annotations", "izingcaciso"},
	{"example", "isibonelo"},
	{"community of practice", "ulusetshenziswayo"},
	{"dissemination", "ukusatshalaliswa"},
	{"dissemination of terminology", "ukusatshalaliswa kwamatemu"},
	{"linguistic works", "imisebenzi yezocwaningozilimi"},
	{"works", "imisebenzi"},
	{"questions and answers", "imibuzo nezimpendulo"},
	{"questions", "imibuzo"},
	{"answers", "izimpendulo"},

	// University and organization terms
	{"university", "inyuvesi"},
	{"department chair", "usekelasihlalo"},
	{"programme director", "umphathi wohlelo"},

	// Meeting and conference terms
	{"opening", "ukuqala"},
	{"session", "isifundo"},
	{"presentation", "ukwethulwa"},
	{"discussion", "ingxoxo"},
	{"panel", "iphaneli"},
	{"keynote", "inkulumo eqondisayo"},
	{"speaker", "isikhulumi"},
	{"attendee", "ozohambela"},
	{"participant", "ozohlanganyela"},
	{"organizer", "umhleli"},

	// Time and duration terms
	{"minutes", "imizuzu"},
	{"hours", "amahora"},
	{"duration", "ubude besikhathi"},
	{"schedule", "uhlelo"},
	{"agenda", "uhlelo"},
	{"programme", "uhlelo"},
	{"timetable", "uhlelo lwezikhathi"},

	// Months and days
	{"december", "zibandlela"},
	{"november", "kulwezi"},
	{"february", "kolandela"},
	{"thursday", "ulwesine"},
	{"friday", "ulwesihlanu"},

	// Document and material terms
	{"proceedings", "izingcaciselo"},
	{"abstract", "isifinyezo"},
	{"paper", "iphepha"},
	{"publication", "ukushicilelwa"},
	{"handbook", "incwadi yesandla"},
	{"manual", "incwadi yomsebenzi"},
	{"guide", "isikhombisi"},
	{"template", "isifanekiso"},

	// Academic activities
	{"research", "ucwaningo"},
	{"study", "isifundo"},
	{"analysis", "uhlaziyo"},
	{"methodology", "indlela yokusebenza"},
	{"framework", "uhlaka"},
	{"model", "imodeli"},
	{"theory", "inkolelo-mqondo"},
	{"concept", "umqondo"},
	{"definition", "incazelo"},
	{"classification", "ukuhlukanisa"},
	{"categorization", "ukuhlukanisa ngezigaba"},

	// Verbs
	{"register", "bhalisa"},
	{"open", "vula"},
	{"welcome", "wamukela"},
	{"introduce", "ethula"},
	{"present", "ethula"},
	{"facilitate", "thulisa"},
	{"standardize", "vamisa"},
	{"develop", "qamba"},
	{"challenge", "phonsela inselelo"},
	{"disseminate", "satshalalisa"},
	{"evaluate", "hlola"},
	{"thank", "bonga"},
	{"close", "vala"},
	{"depart", "goduka"},

	// Academic qualifiers
	{"academic", "ezemfundo"},
	{"scientific", "zesayensi"},
	{"technical", "zobuchwepheshe"},
	{"professional", "zobungcweti"},
	{"formal", "ezisemthethweni"},
	{"informal", "ezingezona ezisemthethweni"},

	// Measurement terms
	{"standard", "evamile"},
	{"quality", "ikhwalithi"},
	{"accuracy", "ukunemba"},
	{"precision", "ukunemba ngokweqile"},
	{"consistency", "ukuqhubekela phambili"},
	{"reliability", "ukwethembeka"},
	{"validity", "ukuba semthethweni"},

	// Conference logistics
	{"venue", "indawo"},
	{"location", "indawo"},
	{"logistics", "izinto zokuhlela"},
	{"accommodation", "indawo yokuhlala"},
	{"transport", "izinto zokuthutha"},
	{"catering", "ukuletha ukudla"},
	{"equipment", "izinto zokusebenza"},

	// Academic titles and roles
	{"secretary", "unobhala"},
	{"treasurer", "umphathi wezimali"},
	{"advisor", "umeluleki"},
	{"consultant", "umphenyi ngezeluleko"},
	{"expert", "ingcweti"},
	{"specialist", "ochwepheshe"},

	// Numbers
	{"first", "loku-1"},
	{"second", "lwesi-2"},
	{"one", "loku-1"},
	{"two", "lwesi-2"},

	// Connectors and prepositions
	{"all", "sonke"},
	{"and", "futhi"},
	{"or", "noma"},
	{"but", "kodwa"},
	{"with", "nga"},
	{"without", "ngaphandle kwa"},
	{"for", "nge"},
	{"about", "nga"},
	{"during", "ngesikhathi"},
	{"after", "ngemuva kwa"},
	{"before", "ngaphambi kwa"},
	{"according to", "ngokwe"},
	{"within the", "ngaphakathi kwe"},
	{"for the", "nge"},
	{"of the", "ka"},
	{"in the", "ku"},
	{"to the", "uku"},
	{"and the", "futhi"},
	{"with the", "nga"},

	// Phrases collected from live traffic
	{"vote of thanks & closing remarks", "amazwi okubonga nokuvala"},
	{"vote of thanks and closing remarks", "amazwi okubonga nokuvala"},
	{"programme materials development workshop", "inkuthazakwenza yokusungula nokuthuthukisa izinsizakufundisa zohlelo"},
	{"materials development workshop", "inkuthazakwenza yokuthuthukisa izinsizakufundisa"},
	{"introduction of the facilitator", "ukwethulwa komthulisifundo"},
	{"introduction of facilitator", "ukwethulwa komthulisifundo"},
	{"facilitator introduction", "ukwethulwa komthulisifundo"},
	{"developing a ukzn specific african language foundational concepts series", "ukuthuthukisa uchungechunge lwemiqondomsuka eyisisekelo yezilimi zase-afrika ezise-ukzn"},
	{"welcome by", "siyakwamukela nge"},
	{"dvc", "idvc"},
	{"wrap-up", "ukusongwa"},
	{"evaluation", "ukuhlolwa"},
	{"workshop evaluation", "ukuhlolwa kwenkuthazakwenza"},
	{"welcome by ukzn dvc", "siyakwamukela ngedvc yase-ukzn"},
	{"evaluation of the workshop", "ukuhlolwa kwenkuthazakwenza"},
	{"workshop wrap-up", "ukusongwa kwenkuthazakwenza"},
	{"closing", "ukuvala"},
	{"remarks", "amazwi"},
	{"introductions", "izethulo"},
}
