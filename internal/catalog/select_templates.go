package catalog

var selectTemplates = []Template{
	{
		ID:          "select/asset-account",
		Kind:        KindSelect,
		Text:        fixed("次の勘定科目のうち、「資産」に分類されるものはどれか。"),
		Select:      choice("前払金", "前受金", "借入金", "受取利息"),
		Explanation: "前払金は、商品を受け取る権利を表すため「資産」です。前受金・借入金は負債、受取利息は収益です。",
	},
	{
		ID:          "select/liability-account",
		Kind:        KindSelect,
		Text:        fixed("次の勘定科目のうち、「負債」に分類されるものはどれか。"),
		Select:      choice("未払法人税等", "仮払法人税等", "租税公課", "未収金"),
		Explanation: "未払〜は後で支払う義務のため「負債」です。",
	},
	{
		ID:          "select/revenue-account",
		Kind:        KindSelect,
		Text:        fixed("次の勘定科目のうち、「収益」に分類されるものはどれか。"),
		Select:      choice("受取配当金", "未収金", "前受金", "貸付金"),
		Explanation: "受取配当金は収益です。未収金・貸付金は資産、前受金は負債です。",
	},
	{
		ID:          "select/expense-account",
		Kind:        KindSelect,
		Text:        fixed("次の勘定科目のうち、「費用」に分類されるものはどれか。"),
		Select:      choice("支払利息", "受取利息", "未払金", "借入金"),
		Explanation: "支払利息は費用です。受取利息は収益、未払金・借入金は負債です。",
	},
	{
		ID:          "select/current-asset",
		Kind:        KindSelect,
		Text:        fixed("次の勘定科目のうち、貸借対照表の「流動資産」に分類されるものはどれか。"),
		Select:      choice("売掛金", "建物", "土地", "備品"),
		Explanation: "売掛金は1年以内に現金化される流動資産です。建物・土地・備品は固定資産です。",
	},
	{
		ID:          "select/fixed-asset",
		Kind:        KindSelect,
		Text:        fixed("次の勘定科目のうち、貸借対照表の「固定資産」に分類されるものはどれか。"),
		Select:      choice("車両運搬具", "商品", "現金", "売掛金"),
		Explanation: "車両運搬具は長期間使用する固定資産です。商品・現金・売掛金は流動資産です。",
	},
	{
		ID:          "select/books-for-credit-purchase",
		Kind:        KindSelect,
		Text:        fixed("商品の仕入取引（掛け仕入）を記録するために、必ず記入しなければならない補助簿はどれか。"),
		Select:      choice("仕入帳・買掛金元帳", "売上帳・売掛金元帳", "現金出納帳", "受取手形記入帳"),
		Explanation: "掛け仕入に関係するのは「仕入帳」（仕入の明細）と「買掛金元帳」（仕入先ごとの債務管理）です。",
	},
	{
		ID:          "select/books-for-credit-sale",
		Kind:        KindSelect,
		Text:        fixed("商品を掛けで販売したとき、記入すべき補助簿の組み合わせとして正しいものはどれか。"),
		Select:      choice("売上帳・売掛金元帳", "仕入帳・買掛金元帳", "現金出納帳", "当座預金出納帳"),
		Explanation: "掛け販売は「売上帳」（売上の明細）と「売掛金元帳」（得意先別の債権管理）に記入します。",
	},
	{
		ID:          "select/transfer-slip",
		Kind:        KindSelect,
		Text:        fixed("3伝票制において、「現金の入出金を伴わない取引」を起票する伝票はどれか。"),
		Select:      choice("振替伝票", "入金伝票", "出金伝票", "売上伝票"),
		Explanation: "入金伝票は現金受入、出金伝票は現金支払、それ以外は全て振替伝票を使用します。",
	},
	{
		ID:          "select/five-slip-system",
		Kind:        KindSelect,
		Text:        fixed("5伝票制における伝票の組み合わせとして正しいものはどれか。"),
		Select:      choice("入金・出金・振替・仕入・売上", "入金・出金・振替のみ", "入金・出金・当座預金・仕入・売上", "現金・預金・振替・仕入・売上"),
		Explanation: "5伝票制は、入金伝票、出金伝票、振替伝票、仕入伝票、売上伝票の5種類です。",
	},
	{
		ID:          "select/income-summary-account",
		Kind:        KindSelect,
		Text:        fixed("決算において、収益・費用の各勘定残高を振り替えるために設ける勘定はどれか。"),
		Select:      choice("損益", "残高", "繰越利益剰余金", "資本金"),
		Explanation: "収益と費用は「損益」勘定に集められ、当期純損益が計算されます。",
	},
	{
		ID:          "select/principal-books",
		Kind:        KindSelect,
		Text:        fixed("次の帳簿のうち、「主要簿」に該当するものはどれか。"),
		Select:      choice("仕訳帳・総勘定元帳", "現金出納帳・売掛金元帳", "仕入帳・売上帳", "受取手形記入帳"),
		Explanation: "主要簿は「仕訳帳」と「総勘定元帳」の2つです。それ以外は全て補助簿です。",
	},
	{
		ID:          "select/principal-book-single",
		Kind:        KindSelect,
		Text:        fixed("主要簿に分類されるものはどれか。"),
		Select:      choice("総勘定元帳", "現金出納帳", "仕入帳", "売上帳"),
		Explanation: "主要簿は「仕訳帳」と「総勘定元帳」の2つです。現金出納帳・仕入帳・売上帳は補助簿（補助記入帳）です。",
	},
	{
		ID:          "select/subsidiary-journal",
		Kind:        KindSelect,
		Text:        fixed("次の帳簿のうち、「補助記入帳」に該当するものはどれか。"),
		Select:      choice("売上帳", "仕訳帳", "総勘定元帳", "損益勘定"),
		Explanation: "補助記入帳には、現金出納帳、仕入帳、売上帳、受取手形記入帳、支払手形記入帳などがあります。",
	},
	{
		ID:          "select/subsidiary-ledger",
		Kind:        KindSelect,
		Text:        fixed("補助元帳に分類されるものはどれか。"),
		Select:      choice("買掛金元帳", "仕訳帳", "総勘定元帳", "試算表"),
		Explanation: "補助元帳には、売掛金元帳・買掛金元帳・商品有高帳などがあります。各勘定の明細を管理します。",
	},
	{
		ID:          "select/receipt-voucher",
		Kind:        KindSelect,
		Text:        fixed("次の証ひょうのうち、入金を証明する証ひょうはどれか。"),
		Select:      choice("領収証", "請求書", "納品書", "注文書"),
		Explanation: "領収証は代金の受取を証明する証ひょうです。請求書・納品書・注文書は入金証明ではありません。",
	},
	{
		ID:          "select/daily-journal-summary",
		Kind:        KindSelect,
		Text:        fixed("仕訳日計表の役割として正しいものはどれか。"),
		Select:      choice("伝票を日付順に集計し総勘定元帳への転記を容易にする", "取引を発生順に記録する", "各勘定科目の残高を計算する", "決算整理仕訳を行う"),
		Explanation: "仕訳日計表は、1日分の伝票を集計し、総勘定元帳への転記作業を効率化するための帳簿です。",
	},
	{
		ID:          "select/checking-book-debit-balance",
		Kind:        KindSelect,
		Text:        fixed("当座預金出納帳の借方残高が示すものはどれか。"),
		Select:      choice("当座預金の残高（資産）", "当座借越の残高（負債）", "現金の残高", "普通預金の残高"),
		Explanation: "当座預金出納帳の借方残高は、当座預金勘定（資産）の残高を示します。",
	},
	{
		ID:          "select/imprest-system",
		Kind:        KindSelect,
		Text:        fixed("小口現金出納帳を作成する際の記帳方法として正しいものはどれか。"),
		Select:      choice("定額資金前渡制（インプレスト・システム）", "随時資金前渡制", "小切手振出制", "現金過不足制"),
		Explanation: "小口現金出納帳は通常、定額資金前渡制（インプレスト・システム）で管理します。一定額を前渡しし、使用分を補給する方法です。",
	},
	{
		ID:          "select/reversing-entry",
		Kind:        KindSelect,
		Text:        fixed("次の勘定記入のうち、「再振替仕訳」が必要となるものはどれか。"),
		Select:      choice("費用の見越し・収益の繰延べ", "減価償却", "貸倒引当金の設定", "消耗品の期末整理"),
		Explanation: "費用の見越し・収益の繰延べは、翌期首に再振替仕訳（逆仕訳）が必要です。減価償却等は再振替不要です。",
	},
	{
		ID:          "select/trial-balance-types",
		Kind:        KindSelect,
		Text:        fixed("試算表の種類として正しいものはどれか。"),
		Select:      choice("合計試算表・残高試算表・合計残高試算表", "仕訳試算表・総勘定試算表", "月次試算表・年次試算表", "貸借試算表・損益試算表"),
		Explanation: "試算表には、合計試算表、残高試算表、合計残高試算表の3種類があります。",
	},
	{
		ID:          "select/worksheet-column-order",
		Kind:        KindSelect,
		Text:        fixed("精算表の記入欄の順序として正しいものはどれか。"),
		Select:      choice("試算表→整理記入→損益計算書→貸借対照表", "試算表→損益計算書→整理記入→貸借対照表", "整理記入→試算表→貸借対照表→損益計算書", "損益計算書→貸借対照表→試算表→整理記入"),
		Explanation: "精算表は、左から「試算表」→「整理記入」→「損益計算書」→「貸借対照表」の順に記入します。",
	},
	{
		ID:          "select/worksheet-adjustment-column",
		Kind:        KindSelect,
		Text:        fixed("精算表の「整理記入」欄に記入する内容はどれか。"),
		Select:      choice("決算整理仕訳", "期中の取引仕訳", "前期繰越の金額", "当期純利益"),
		Explanation: "整理記入欄には、減価償却・貸倒引当金設定・費用収益の見越繰延など決算整理仕訳を記入します。",
	},
	{
		ID:          "select/worksheet-income-statement-column",
		Kind:        KindSelect,
		Text:        fixed("精算表の「損益計算書」欄に記入される勘定科目はどれか。"),
		Select:      choice("売上", "売掛金", "建物", "資本金"),
		Explanation: "損益計算書欄には収益・費用の勘定科目が記入されます。売掛金・建物・資本金は貸借対照表欄に記入します。",
	},
	{
		ID:          "select/receivable-debit-side",
		Kind:        KindSelect,
		Text:        fixed("売掛金勘定の借方に記入されるのはどの取引か。"),
		Select:      choice("商品を掛けで売り上げた", "掛代金を現金で回収した", "売掛金を貸倒れで処理した", "返品を受けた"),
		Explanation: "売掛金勘定の借方（増加側）は、掛販売による債権の発生時です。回収・貸倒・返品は貸方（減少側）。",
	},
	{
		ID:          "select/payable-credit-side",
		Kind:        KindSelect,
		Text:        fixed("買掛金勘定の貸方に記入されるのはどの取引か。"),
		Select:      choice("商品を掛けで仕入れた", "掛代金を現金で支払った", "仕入先に商品を返品した", "買掛金を手形で決済した"),
		Explanation: "買掛金勘定の貸方（増加側）は、掛仕入による債務の発生時です。支払・返品・手形決済は借方（減少側）。",
	},
	{
		ID:          "select/cash-book-entry",
		Kind:        KindSelect,
		Text:        fixed("現金出納帳に記入すべき取引はどれか。"),
		Select:      choice("現金で消耗品を購入した", "掛けで商品を仕入れた", "当座預金から引き出した", "手形を受け取った"),
		Explanation: "現金出納帳は現金の入出金取引のみを記入します。掛取引・預金取引・手形取引は他の補助簿で記入します。",
	},
	{
		ID:          "select/fifo-issue-rule",
		Kind:        KindSelect,
		Text:        fixed("商品有高帳（先入先出法）で払出単価を決定する際の原則はどれか。"),
		Select:      choice("古く仕入れたものから順に払い出す", "新しく仕入れたものから順に払い出す", "平均単価で払い出す", "最終仕入単価で払い出す"),
		Explanation: "先入先出法は、先に仕入れたものから先に払い出すと仮定する方法です。",
	},
	{
		ID:          "select/fixed-asset-register",
		Kind:        KindSelect,
		Text:        fixed("固定資産台帳に記録する内容として適切でないものはどれか。"),
		Select:      choice("毎日の現金残高", "取得年月日", "取得原価", "減価償却累計額"),
		Explanation: "固定資産台帳は各固定資産の取得・減価償却・除売却を管理します。現金残高は現金出納帳の記録事項です。",
	},
	{
		ID:          "select/consumption-tax-settlement",
		Kind:        KindSelect,
		Text:        fixed("消費税の仮払消費税と仮受消費税の差額を決算時に処理する勘定科目はどれか。"),
		Select:      choice("未払消費税（または未収消費税）", "租税公課", "雑収入", "消費税"),
		Explanation: "仮受消費税が仮払消費税より多い場合は「未払消費税」（負債）、少ない場合は「未収消費税」（資産）で処理します。",
	},
}
