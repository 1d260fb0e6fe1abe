package charset

// Fixed letter templates used for classification.
//
// The Latin templates define what counts as an "ordinary" letter; any
// cased letter outside of them lands in the expanded accented bucket.
// The Arabic and Farsi templates list the base alphabets used for
// script proofs, and the joining templates partition Arabic-script
// letters by their positional joining behavior. A letter may be a
// member of more than one template.
const (
	UpperTemplate = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerTemplate = "abcdefghijklmnopqrstuvwxyz"

	ArTemplate     = "ابجدهوزحطيكلمنسعفصقرشتثخذضظغء"
	FaTemplate     = "یهونملگکقفغعظطضصشسژزرذدخحچجثتپباء"
	ArfaDualJoin   = "بتثپنقفڤسشصضطظكلهةمعغحخجچيئىکگی"
	ArfaRightJoin  = "اأإآٱرزدذوؤژ"
)

// arabicProbeLetters are the characters a repertoire must contain for a
// font to qualify for Arabic proofing.
var arabicProbeLetters = []rune{'ب', 'ا', 'ح', 'د', 'ر'}
