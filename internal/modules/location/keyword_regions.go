package location

// KeywordRegions is the free-text fallback table. Aliases are normalized
// (lowercase, no accents, no punctuation) and matched as whole words. Regions are
// tried in declaration order, so facilities and specific neighbourhoods precede
// the city zones and the catch-all.
var KeywordRegions = []Region{
	{Key: "aeroporto-guarulhos", Name: "Aeroporto Internacional de Guarulhos", Aliases: []string{
		"aeroporto de guarulhos", "aeroporto internacional de guarulhos", "aeroporto guarulhos",
		"guarulhos airport", "cumbica", "gru airport", "aeroporto gru",
	}},
	{Key: "aeroporto-congonhas", Name: "Aeroporto de Congonhas", Aliases: []string{
		"aeroporto de congonhas", "congonhas", "cgh",
	}},
	{Key: "aeroporto-viracopos", Name: "Aeroporto de Viracopos", Aliases: []string{
		"viracopos", "aeroporto de campinas", "vcp",
	}},
	{Key: "rodoviaria-tiete", Name: "Terminal Rodoviário Tietê", Aliases: []string{
		"rodoviaria tiete", "terminal tiete", "terminal rodoviario tiete",
	}},
	{Key: "avenida-paulista", Name: "Avenida Paulista", Aliases: []string{
		"avenida paulista", "av paulista", "masp",
	}},
	{Key: "jardins", Name: "Jardins", Aliases: []string{
		"jardins", "jardim paulista", "jardim america", "jardim europa", "oscar freire",
	}},
	{Key: "itaim-bibi", Name: "Itaim Bibi / Faria Lima", Aliases: []string{
		"itaim bibi", "itaim", "faria lima",
	}},
	{Key: "vila-olimpia", Name: "Vila Olímpia", Aliases: []string{
		"vila olimpia",
	}},
	{Key: "brooklin-berrini", Name: "Brooklin / Berrini", Aliases: []string{
		"berrini", "brooklin",
	}},
	{Key: "moema", Name: "Moema", Aliases: []string{
		"moema", "ibirapuera",
	}},
	{Key: "centro", Name: "Centro", Aliases: []string{
		"centro historico", "praca da se", "republica", "anhangabau", "bela vista",
	}},
	{Key: "alphaville-barueri", Name: "Alphaville / Barueri", Aliases: []string{
		"alphaville", "barueri", "tambore", "santana de parnaiba",
	}},
	{Key: "campinas", Name: "Campinas", Aliases: []string{
		"campinas",
	}},
	{Key: "baixada-santista", Name: "Baixada Santista", Aliases: []string{
		"santos", "guaruja", "sao vicente", "praia grande", "bertioga",
	}},
	{Key: "vale-paraiba", Name: "Vale do Paraíba", Aliases: []string{
		"sao jose dos campos", "taubate", "jacarei",
	}},
	{Key: "campos-do-jordao", Name: "Campos do Jordão", Aliases: []string{
		"campos do jordao",
	}},
	{Key: "abc-paulista", Name: "ABC Paulista", Aliases: []string{
		"abc paulista", "santo andre", "sao bernardo do campo", "sao bernardo",
		"sao caetano do sul", "sao caetano", "diadema", "maua", "ribeirao pires",
		"rio grande da serra",
	}},
	{Key: "zona-oeste", Name: "Zona Oeste", Aliases: []string{
		"butanta", "pinheiros", "alto de pinheiros", "vila madalena", "perdizes",
		"lapa", "pompeia", "barra funda", "morumbi", "jaguare",
	}},
	{Key: "zona-sul", Name: "Zona Sul", Aliases: []string{
		"santo amaro", "interlagos", "jabaquara", "campo belo", "vila mariana",
		"saude", "ipiranga", "cidade ademar",
	}},
	{Key: "zona-norte", Name: "Zona Norte", Aliases: []string{
		"santana", "tucuruvi", "casa verde", "vila maria", "freguesia do o", "mandaqui",
	}},
	{Key: "zona-leste", Name: "Zona Leste", Aliases: []string{
		"tatuape", "mooca", "penha", "itaquera", "vila prudente", "analia franco",
		"sao miguel paulista",
	}},
	{Key: "osasco", Name: "Osasco / Carapicuíba", Aliases: []string{
		"osasco", "carapicuiba",
	}},
	{Key: "guarulhos", Name: "Guarulhos", Aliases: []string{
		"guarulhos",
	}},
	{Key: "grande-sao-paulo", Name: "Grande São Paulo", Aliases: []string{
		"sao paulo",
	}},
}
