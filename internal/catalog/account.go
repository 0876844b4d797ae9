package catalog

// Category classifies an account title.
type Category string

const (
	CategoryAsset     Category = "資産"
	CategoryLiability Category = "負債"
	CategoryNetAsset  Category = "純資産"
	CategoryRevenue   Category = "収益"
	CategoryExpense   Category = "費用"
	CategoryOther     Category = "その他"
)

type account struct {
	name     string
	category Category
}

var chart = []account{
	{"現金", CategoryAsset}, {"小口現金", CategoryAsset},
	{"普通預金", CategoryAsset}, {"当座預金", CategoryAsset}, {"定期預金", CategoryAsset},
	{"受取手形", CategoryAsset}, {"売掛金", CategoryAsset},
	{"電子記録債権", CategoryAsset}, {"クレジット売掛金", CategoryAsset},
	{"貸付金", CategoryAsset}, {"手形貸付金", CategoryAsset},
	{"仮払金", CategoryAsset}, {"立替金", CategoryAsset}, {"前払金", CategoryAsset},
	{"未収金", CategoryAsset}, {"差入保証金", CategoryAsset},
	{"受取商品券", CategoryAsset}, {"不渡手形", CategoryAsset},
	{"売買目的有価証券", CategoryAsset},
	{"商品", CategoryAsset}, {"繰越商品", CategoryAsset}, {"貯蔵品", CategoryAsset}, {"消耗品", CategoryAsset},
	{"建物", CategoryAsset}, {"備品", CategoryAsset}, {"車両運搬具", CategoryAsset}, {"土地", CategoryAsset},
	{"前払費用", CategoryAsset}, {"未収収益", CategoryAsset}, {"仮払法人税等", CategoryAsset}, {"仮払消費税", CategoryAsset},

	{"買掛金", CategoryLiability}, {"支払手形", CategoryLiability},
	{"電子記録債務", CategoryLiability}, {"未払金", CategoryLiability},
	{"借入金", CategoryLiability}, {"手形借入金", CategoryLiability},
	{"当座借越", CategoryLiability}, {"前受金", CategoryLiability},
	{"預り金", CategoryLiability}, {"仮受金", CategoryLiability},
	{"所得税預り金", CategoryLiability}, {"住民税預り金", CategoryLiability}, {"社会保険料預り金", CategoryLiability},
	{"未払法人税等", CategoryLiability}, {"未払配当金", CategoryLiability}, {"未払消費税", CategoryLiability},
	{"商品券", CategoryLiability},
	{"未払費用", CategoryLiability}, {"前受収益", CategoryLiability}, {"仮受消費税", CategoryLiability},

	{"資本金", CategoryNetAsset}, {"資本準備金", CategoryNetAsset}, {"利益準備金", CategoryNetAsset}, {"繰越利益剰余金", CategoryNetAsset},

	{"売上", CategoryRevenue}, {"受取利息", CategoryRevenue}, {"受取家賃", CategoryRevenue},
	{"受取配当金", CategoryRevenue}, {"受取手数料", CategoryRevenue}, {"雑収入", CategoryRevenue},
	{"償却債権取立益", CategoryRevenue}, {"固定資産売却益", CategoryRevenue}, {"貸倒引当金戻入", CategoryRevenue},
	{"有価証券売却益", CategoryRevenue},

	{"仕入", CategoryExpense}, {"給料", CategoryExpense}, {"法定福利費", CategoryExpense},
	{"旅費交通費", CategoryExpense}, {"通信費", CategoryExpense}, {"水道光熱費", CategoryExpense},
	{"広告宣伝費", CategoryExpense}, {"消耗品費", CategoryExpense}, {"支払家賃", CategoryExpense},
	{"支払地代", CategoryExpense}, {"支払利息", CategoryExpense}, {"支払手数料", CategoryExpense},
	{"租税公課", CategoryExpense}, {"支払保険料", CategoryExpense}, {"修繕費", CategoryExpense}, {"貸倒損失", CategoryExpense}, {"雑費", CategoryExpense},
	{"雑損", CategoryExpense}, {"現金過不足", CategoryExpense},
	{"減価償却費", CategoryExpense}, {"貸倒引当金繰入", CategoryExpense},
	{"固定資産売却損", CategoryExpense}, {"固定資産除却損", CategoryExpense},
	{"有価証券売却損", CategoryExpense}, {"手形売却損", CategoryExpense},
	{"法人税、住民税及び事業税", CategoryExpense},

	// Contra and closing accounts used by journal input.
	{"貸倒引当金", CategoryOther}, {"減価償却累計額", CategoryOther}, {"損益", CategoryOther},
}

// Accounts returns the full chart of account titles in chart order.
// The returned slice is a copy.
func Accounts() []string {
	out := make([]string, len(chart))
	for i, a := range chart {
		out[i] = a.name
	}
	return out
}

// AccountCategory returns the category of an account title.
func AccountCategory(name string) (Category, bool) {
	for _, a := range chart {
		if a.name == name {
			return a.category, true
		}
	}
	return "", false
}

// IsAccount reports whether name is in the chart of accounts.
func IsAccount(name string) bool {
	_, ok := AccountCategory(name)
	return ok
}

var counterparties = []string{
	"A商店", "B商事", "C物産", "D商店", "E社", "Fマート", "山田商店", "鈴木商事",
}

// Counterparties returns the narrative names interpolated into problem text.
func Counterparties() []string {
	out := make([]string, len(counterparties))
	copy(out, counterparties)
	return out
}
