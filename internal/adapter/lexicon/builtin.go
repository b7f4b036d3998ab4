package lexicon

// Built-in Uzbek (Latin script) word lists.

var builtinPositive = []string{
	"yaxshi", "ajoyib", "muvaffaqiyat", "quvonch", "baxt", "zo'r",
	"muhabbat", "hurmat", "mamnun", "xursand", "g'urur", "ishonch",
	"sog'lom", "tinch", "osoyishta", "foydali", "baraka", "omad",
}

var builtinNegative = []string{
	"yomon", "xafa", "qayg'u", "muammo", "xato", "qiyin", "tashvish",
	"stress", "qo'rquv", "bezovta", "pushaymon", "g'azab", "kulfat",
	"zulum", "xavotir", "yo'qotish", "hafsalasizlik", "norozilik",
}

var builtinNeutral = []string{
	"oddiy", "odatiy", "o'rtacha", "me'yoriy", "normal", "barqaror",
	"befarq", "neytral", "rasmiy", "shunchaki",
}

var builtinStopwords = []string{
	"va", "bilan", "uchun", "ham", "bu", "u", "men", "sen", "biz", "siz",
	"ular", "lekin", "ammo", "yoki", "edi", "emas", "bor", "yo'q", "juda",
	"eng", "har", "bir", "shu", "o'sha", "kabi", "deb", "esa", "chunki",
	"agar", "qadar", "keyin", "oldin", "hamda", "balki", "hatto", "faqat",
	"hali", "endi", "yana", "ushbu", "shunday", "shuning", "mening",
	"sening", "bizning", "sizning", "ularning", "uning", "barcha", "hamma",
	"boshqa", "orqali", "ekan", "bo'ldi", "bo'lib", "bo'lgan", "qilib",
	"qildi", "etib", "ana", "mana", "kerak", "mumkin", "haqida", "bo'yicha",
	"tomonidan", "sababli", "holda",
}

// Builtin returns the default lexicon.
func Builtin() *Lexicon {
	return New(Data{
		Positive:  builtinPositive,
		Negative:  builtinNegative,
		Neutral:   builtinNeutral,
		Stopwords: builtinStopwords,
	})
}
