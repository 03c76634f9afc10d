package entropy

// commonBigramPairs is a concatenated list of two-character sequences that
// occur frequently in natural-language text and in source code (identifiers,
// keywords, URLs, config keys). Adjacent-character pairs of a candidate
// string are looked up here after ASCII case folding; a string whose pairs
// land in this table far more often than a uniform random string would is
// treated as non-random.
//
// The list was assembled from English letter-pair frequency tables plus the
// pairs dominant in identifier text (underscore joins, "er"/"or" agent
// suffixes, digit runs that appear in version strings).
const commonBigramPairs = "" +
	"thheinerantiesonatseenndtoedisitalarstnttengofleomdeheraroli" +
	"ricoioneeaasouhahimetaurucveelllmanaeanitrretesisihonsorasme" +
	"olchilunrolasootewiwhvethateaesnoetpeecutldmoemdafoowaidhoso" +
	"losshynniftgewesspelldifdiairprusimbeciovtutysumincawrmyuppo" +
	"cttantwesurfkebyhedsbeacplkedwobogooprdsaymaagkncedocugtfisi" +
	"paodrrnesadipwibltygaffubebuobkitcsmimsgiopuytsdpayevblabubs" +
	"eyudptublupduamsbaudoienagbtbnsvnhettpftfpwpbk_t_s_c_p_a_e_i" +
	"_o_ns_e_t_d_y_r_g_l_00011012131415161718192021222334455667788990" +
	"2k2x3a3b4c4d5e5f6a6b7c7d8e8f9a9bx0x1v1v2qwrtzuioplkjhgfdszx" +
	"cvbnmqaazwsxedcrfvtgbyhnujmikolpgethutsetgeyptputdelkeyvalurlap" +
	"pidtokausecracsecpasswdcfgconenvvarlognumstrintboofunclavoidnu" +
	"llnilrueaxbxcxdxexfxgxhxixjxkxlxmxnxoxpxqxrxsxtxuxvxwxyxzaqbqc" +
	"rdwoswowaykyoygyuebidsnenawemewyudhamihoperabobucahammttllcc" +
	"nnppbbddggrrffooeeiiuuaawdberkmsdtdsrcrtyoidfeuryrnsnsfsgshs"

// bigramTable is the compiled lookup set built once at package init.
var bigramTable = buildBigramTable()

func buildBigramTable() map[[2]byte]struct{} {
	table := make(map[[2]byte]struct{}, len(commonBigramPairs)/2)
	for i := 0; i+1 < len(commonBigramPairs); i += 2 {
		var key [2]byte
		key[0] = commonBigramPairs[i]
		key[1] = commonBigramPairs[i+1]
		table[key] = struct{}{}
	}
	return table
}

// isCommonBigram reports whether the case-folded pair (a, b) is in the table.
func isCommonBigram(a, b byte) bool {
	var key [2]byte
	key[0] = foldASCII(a)
	key[1] = foldASCII(b)
	_, ok := bigramTable[key]
	return ok
}

// commonBigramDensity returns the fraction of all possible pairs over an
// alphabet of the given kind that are present in the table. Computed once per
// alphabet at init and cached; used as the success probability of the
// binomial model for random strings.
var densityByAlphabet = map[alphabetKind]float64{
	alphabetHex:    densityFor(alphabetHex),
	alphabetBase36: densityFor(alphabetBase36),
	alphabetBase64: densityFor(alphabetBase64),
}

func densityFor(kind alphabetKind) float64 {
	chars := alphabetChars(kind)
	hits := 0
	for _, a := range chars {
		for _, b := range chars {
			if isCommonBigram(a, b) {
				hits++
			}
		}
	}
	total := len(chars) * len(chars)
	return float64(hits) / float64(total)
}

func foldASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}
