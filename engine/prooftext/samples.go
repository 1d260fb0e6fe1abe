package prooftext

// Curated sample texts for fonts covering the basic Latin alphabet.
// The big variants are set at display sizes, the small variants at text
// sizes; both exercise frequent letter pairs, figures and punctuation.

const BigMixedText = `Jackdaws love my big sphinx of quartz. The quick onyx goblin jumps over the lazy dwarf. Amazingly few discotheques provide jukeboxes. Pack my box with five dozen liquor jugs. How vexingly quick daft zebras jump! Waltz, bad nymph, for quick jigs vex. Sympathizing would fix Quaker objectives. Brawny gods just flocked up to quiz and vex him.`

const BigLowerText = `jackdaws love my big sphinx of quartz. the quick onyx goblin jumps over the lazy dwarf. amazingly few discotheques provide jukeboxes. pack my box with five dozen liquor jugs. how vexingly quick daft zebras jump! waltz, bad nymph, for quick jigs vex.`

const BigUpperText = `JACKDAWS LOVE MY BIG SPHINX OF QUARTZ. THE QUICK ONYX GOBLIN JUMPS OVER THE LAZY DWARF. AMAZINGLY FEW DISCOTHEQUES PROVIDE JUKEBOXES. PACK MY BOX WITH FIVE DOZEN LIQUOR JUGS. HOW VEXINGLY QUICK DAFT ZEBRAS JUMP!`

const SmallMixedText = `In the middle of the eighteenth century, printers began to question the letterforms they had inherited. A type specimen from 1757 shows a remarkable balance between thick and thin strokes; its italic, cut a few years later, leans at a gentle eleven degrees. Reading at a distance of forty centimetres, the eye resolves about twelve words per line before it tires. Good typography, wrote one master, should be felt rather than seen: the page must carry the voice of the author, not of the punchcutter. Yet every revival changes the original in a hundred quiet ways, and the careful reader notices the difference between 6 and 9 point, between 1830 and 1930, between craft and convention. Questions of spacing, kerning and rhythm decide whether a paragraph invites or repels; the finest faces vanish while being read.`

const SmallLowerText = `in the middle of the eighteenth century, printers began to question the letterforms they had inherited. a type specimen from 1757 shows a remarkable balance between thick and thin strokes; its italic, cut a few years later, leans at a gentle eleven degrees. reading at a distance of forty centimetres, the eye resolves about twelve words per line before it tires. good typography should be felt rather than seen: the page must carry the voice of the author, not of the punchcutter. questions of spacing, kerning and rhythm decide whether a paragraph invites or repels; the finest faces vanish while being read.`

const SmallUpperText = `IN THE MIDDLE OF THE EIGHTEENTH CENTURY, PRINTERS BEGAN TO QUESTION THE LETTERFORMS THEY HAD INHERITED. A TYPE SPECIMEN FROM 1757 SHOWS A REMARKABLE BALANCE BETWEEN THICK AND THIN STROKES. READING AT A DISTANCE OF FORTY CENTIMETRES, THE EYE RESOLVES ABOUT TWELVE WORDS PER LINE BEFORE IT TIRES. QUESTIONS OF SPACING, KERNING AND RHYTHM DECIDE WHETHER A PARAGRAPH INVITES OR REPELS.`

const AdditionalSmallText = `“Where is the difference,” she asked, “between 0 and O, between 1 and l?” — a fair question; the answer lies in details: the figure carries flat terminals (the letter does not), and at 8/10 pt the distinction must survive. Consider pairs like rn/m, cl/d & vv/w; quotation marks ‘single’ and “double”; fractions, percentages (25%, 7½), dashes – both en and em — plus ellipses… All of it, from §1 to №9, belongs to the everyday traffic of a working text face.`

const BigRandomNumbers = `8002 137 4917 56 20489 301 77 6452 98 1034 552 8 267 41903 7216 35 890 12 64057 923 4408 156 72 38 50912 604 281 7 1593 83046 22 475 9180 366 51 70284 948 163 5 82709 431`

// Script-specific sample texts for Arabic proofs.

// ArabicVocalization carries full tashkeel so mark positioning is
// visible on every consonant shape.
const ArabicVocalization = `إِنَّ الْخَطَّ الْعَرَبِيَّ فَنٌّ عَرِيقٌ، تَتَجَلَّى فِيهِ هَنْدَسَةُ الْحَرْفِ وَجَمَالُ التَّشْكِيلِ. يَكْتُبُ الْخَطَّاطُ السَّطْرَ بِأَنَاةٍ، فَيَضَعُ الْفَتْحَةَ وَالضَّمَّةَ وَالْكَسْرَةَ وَالسُّكُونَ فِي مَوَاضِعِهَا، وَيُرَاعِي تَرَاكُبَ الْحَرَكَاتِ مَعَ الشَّدَّةِ وَالتَّنْوِينِ. هٰكَذَا يُخْتَبَرُ الْخَطُّ: حَرْفٌ مُشَكَّلٌ كَامِلًا.`

// ArabicLatinMixed alternates scripts to expose direction changes and
// cross-script spacing.
const ArabicLatinMixed = `التصميم الجيد good design يجمع بين الوضوح clarity والجمال beauty في آن واحد. كتب المصمم designer ملاحظة note عن المسافة بين الحروف letterspacing وقال إن السطر line المتوازن يحتاج إلى إيقاع rhythm ثابت. في عام 2024 صدر الإصدار version الجديد من الخط typeface مع دعم support كامل للعربية Arabic واللاتينية Latin معًا.`

// ArabicFarsiUrduNumbers sets the three digit systems side by side.
const ArabicFarsiUrduNumbers = `٠١٢٣٤٥٦٧٨٩ ۰۱۲۳۴۵۶۷۸۹ 0123456789
٢٤ ساعة، ٣٦٥ يومًا، عام ١٤٤٦ — سال ۱۴۰۳، ۲۴ ساعت، ۳۶۵ روز
٧٫٥ ٪ و ۷٫۵ ٪ و 7.5 % — ١٢٣٤٥٦٧٨٩٠ ۱۲۳۴۵۶۷۸۹۰ 1234567890`
