package catalog

import "fmt"

var journalTemplates = []Template{
	// Cash and deposits.
	{
		ID:   "journal/check-received-on-account",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sより売掛金の回収として、同店振出しの小切手%s円を受け取った。", t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("現金", a)), side(line("売掛金", a)))
		},
		Explanation: "他店振出しの小切手は、通貨代用証券として「現金」勘定で処理します。",
	},
	{
		ID:   "journal/petty-cash-replenished",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("当座預金口座から%s円を引き出し、小口現金係に手渡した。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("小口現金", a)), side(line("当座預金", a)))
		},
		Explanation: "小口現金の資金を補給する取引です。",
	},
	{
		ID:   "journal/payable-paid-with-transfer-fee",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する買掛金%s円を支払うため、当座預金口座から振り込んだ。なお、振込手数料%s円は当方負担とし、普通預金から支払われた。", t, Yen(a), Yen(660))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("買掛金", a), line("支払手数料", 660)),
				side(line("当座預金", a), line("普通預金", 660)),
			)
		},
		Explanation: "振込手数料は「支払手数料」として処理します。",
	},
	{
		ID:   "journal/sale-with-shipping-advance",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sへ商品%s円を売り上げ、代金は掛けとした。なお、発送費%s円を現金で立替払いした。", t, Yen(a), Yen(mil(a, 50)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("売掛金", a), line("立替金", mil(a, 50))),
				side(line("売上", a), line("現金", mil(a, 50))),
			)
		},
		Explanation: "先方負担の発送費を立て替えた場合、「立替金」または「売掛金」に含めて処理します（ここでは立替金勘定を使用）。",
	},
	{
		ID:   "journal/cash-shortage-at-closing",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算において、現金の実際有高が帳簿残高より%s円不足していた。原因は不明である。（期中に現金過不足勘定は使用していない）", Yen(mil(a, 10)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("雑損", mil(a, 10))), side(line("現金", mil(a, 10))))
		},
		Explanation: "決算において現金不足の原因が不明な場合、「雑損」（または雑費）として処理します。",
	},
	{
		ID:   "journal/check-issued-single-account-overdraft",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("当座預金の残高は%s円であったが、%sからの買掛金の支払いとして小切手%s円を振り出した。なお、銀行とは当座借越契約（限度額あり）を結んでいる。", Yen(mil(a, 900)), t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("買掛金", a)), side(line("当座預金", a)))
		},
		Explanation: "「当座借越」勘定を用いない場合（一勘定制）や、期中は当座預金勘定をマイナスにする方法があります。3級では貸方を当座預金として処理するのが一般的です。",
	},

	// Merchandise.
	{
		ID:   "journal/purchase-returned",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sより仕入れた商品の一部に傷があったため返品した。代金%s円は買掛金から減額することとした。", t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("買掛金", a)), side(line("仕入", a)))
		},
		Explanation: "仕入戻し（返品）の処理です。仕入勘定の貸方に記入して、仕入原価を減額します。",
	},
	{
		ID:   "journal/order-deposit-paid",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対し商品%s円を注文し、手付金として%s円を現金で支払った。", t, Yen(a), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("前払金", mil(a, 100))), side(line("現金", mil(a, 100))))
		},
		Explanation: "商品を注文し代金の一部を先に支払った場合は「前払金」勘定で処理します。",
	},
	{
		ID:   "journal/goods-received-against-deposit",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("以前%sに注文していた商品%s円を受け取った。代金は、先に支払った手付金%s円を充当し、残額は掛けとした。", t, Yen(a), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仕入", a)),
				side(line("前払金", mil(a, 100)), line("買掛金", mil(a, 900))),
			)
		},
		Explanation: "商品の引き渡しを受けた際、前払金を振り替え、残額を買掛金とします。",
	},
	{
		ID:   "journal/sale-for-gift-certificate",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sより商品券%s円を受け取り、商品%s円を売り上げた。", t, Yen(mil(a, 100)), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("受取商品券", mil(a, 100))), side(line("売上", mil(a, 100))))
		},
		Explanation: "他店発行の商品券を受け取った場合は「受取商品券」（資産）で処理します。",
	},

	// Notes and electronic claims.
	{
		ID:   "journal/note-collected-at-maturity",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%s振出しの約束手形%s円が満期となり、当座預金口座に入金された。", t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("当座預金", a)), side(line("受取手形", a)))
		},
		Explanation: "手形代金の回収処理です。",
	},
	{
		ID:   "journal/note-endorsed-to-supplier",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する買掛金の支払いとして、かねて売掛金の回収として受け取っていた%s振出しの約束手形%s円を裏書譲渡した。", t, t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("買掛金", a)), side(line("受取手形", a)))
		},
		Explanation: "手形の裏書譲渡。自己保有の受取手形を渡すため、貸方は受取手形です。",
	},
	{
		ID:   "journal/note-dishonored",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("所有する%s振出しの約束手形%s円が不渡りとなった。なお、償還請求費用%s円を現金で支払った。", t, Yen(a), Yen(mil(a, 1)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("不渡手形", a+mil(a, 1))),
				side(line("受取手形", a), line("現金", mil(a, 1))),
			)
		},
		Explanation: "手形が不渡りとなった場合、額面金額＋諸費用を「不渡手形」勘定に振り替えます。",
	},
	{
		ID:   "journal/note-renewed-with-interest",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する買掛金の支払期日を延長してもらうため、かねて振り出していた約束手形%s円を書き換えることになった。新たな手形%s円（利息を含む）を振り出して旧手形と交換した。", t, Yen(a), Yen(a+500))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("支払手形", a), line("支払利息", 500)),
				side(line("支払手形", a+500)),
			)
		},
		Explanation: "手形の更改（書き換え）です。旧手形を消滅させ、利息を加えた新手形を計上します。",
	},
	{
		ID:   "journal/note-discounted",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("得意先振出しの約束手形%s円を銀行で割り引き、割引料%s円を差し引かれた手取金が当座預金に入金された。", Yen(a), Yen(mil(a, 20)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("当座預金", mil(a, 980)), line("手形売却損", mil(a, 20))),
				side(line("受取手形", a)),
			)
		},
		Explanation: "手形の割引は「手形の譲渡」として処理し、割引料は「手形売却損」で処理します。",
	},
	{
		ID:   "journal/receivable-to-electronic-claim",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する売掛金%s円を電子記録債権とすることについて、債務者の承諾を得た。", t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("電子記録債権", a)), side(line("売掛金", a)))
		},
		Explanation: "売掛金を電子記録債権に転換した場合、勘定科目を振り替えます。",
	},
	{
		ID:   "journal/payable-to-electronic-debt",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する買掛金%s円を電子記録債務とすることについて、債権者の請求を承諾した。", t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("買掛金", a)), side(line("電子記録債務", a)))
		},
		Explanation: "買掛金を電子記録債務に転換した場合、勘定科目を振り替えます。",
	},

	// Fixed assets and securities.
	{
		ID:   "journal/equipment-scrapped",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("使用していた備品（取得原価%s円、減価償却累計額%s円、間接法）が使用不能となったため廃棄した。処分価額はゼロである。", Yen(a), Yen(mil(a, 900)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("減価償却累計額", mil(a, 900)), line("固定資産除却損", mil(a, 100))),
				side(line("備品", a)),
			)
		},
		Explanation: "固定資産を除却（廃棄）した場合、帳簿価額（原価-累計額）を「固定資産除却損」として計上します。",
	},
	{
		ID:   "journal/equipment-bought-with-costs",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("備品%s円を購入し、引取運賃%s円、据付費用%s円とともに現金で支払った。", Yen(a), Yen(mil(a, 30)), Yen(mil(a, 20)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("備品", mil(a, 1050))), side(line("現金", mil(a, 1050))))
		},
		Explanation: "固定資産の取得原価には、購入代価に引取運賃、据付費など事業の用に供するまでに要した付随費用を加算します。",
	},
	{
		ID:   "journal/building-bought-with-costs",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("建物%s円を購入し、仲介手数料%s円、不動産取得税%s円とともに普通預金から支払った。", Yen(a*300), Yen(a*9), Yen(a*6))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("建物", a*315)), side(line("普通預金", a*315)))
		},
		Explanation: "建物の取得原価には、購入代価、仲介手数料、登記費用、不動産取得税などの付随費用を含めます。",
	},
	{
		ID:   "journal/equipment-sold-at-loss",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("備品（取得原価%s円、減価償却累計額%s円、間接法）を%s円で売却し、代金は翌月末受取りとした。なお、売却時に運搬費%s円を現金で支払った。", Yen(a), Yen(mil(a, 700)), Yen(mil(a, 200)), Yen(mil(a, 10)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("減価償却累計額", mil(a, 700)), line("未収金", mil(a, 200)), line("固定資産売却損", mil(a, 110))),
				side(line("備品", a), line("現金", mil(a, 10))),
			)
		},
		Explanation: "帳簿価額0.3aと売却価額0.2aの差額0.1aに、売却時の運搬費0.01aを加えた0.11aが固定資産売却損となります。",
	},
	{
		ID:   "journal/vehicle-sold-at-gain",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("車両運搬具（取得原価%s円、減価償却累計額%s円）を%s円で売却し、代金は普通預金に振り込まれた。なお、売却費用%s円は普通預金から支払われた。", Yen(a*36), Yen(a*24), Yen(a*15), Yen(mil(a, 500)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("減価償却累計額", a*24), line("普通預金", mil(a, 14500)), line("支払手数料", mil(a, 500))),
				side(line("車両運搬具", a*36), line("固定資産売却益", a*3)),
			)
		},
		Explanation: "帳簿価額=取得原価-減価償却累計額。売却益=売却価額-帳簿価額。手取額=売却価額-費用。",
	},
	{
		ID:   "journal/building-repair-and-improvement",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("建物の外壁塗装工事を行い、%s円を現金で支払った。このうち%s円は機能向上のための資本的支出、残りは通常の修繕である。", Yen(mil(a, 1500)), Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("建物", a), line("修繕費", mil(a, 500))),
				side(line("現金", mil(a, 1500))),
			)
		},
		Explanation: "資本的支出（機能向上・耐用年数延長）は資産計上、収益的支出（原状回復）は修繕費として費用計上します。",
	},
	{
		ID:   "journal/machine-inspection",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("機械の定期点検費用%s円を現金で支払った。", Yen(mil(a, 80)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("修繕費", mil(a, 80))), side(line("現金", mil(a, 80))))
		},
		Explanation: "定期点検・日常メンテナンスは収益的支出として修繕費で処理します。",
	},
	{
		ID:   "journal/securities-bought",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("A社株式（売買目的有価証券）を1株%s円で100株購入し、代金は証券会社への手数料%s円とともに普通預金から支払った。", Yen(a/100), Yen(mil(a, 20)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("売買目的有価証券", mil(a, 1020))), side(line("普通預金", mil(a, 1020))))
		},
		Explanation: "有価証券の取得原価には、購入代価に付随費用（手数料等）を加算します。",
	},
	{
		ID:   "journal/securities-sold-at-gain",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("保有するB社株式（売買目的有価証券、取得原価%s円）を%s円で売却し、代金は普通預金に振り込まれた。なお、売却手数料%s円が差し引かれている。", Yen(a), Yen(mil(a, 1200)), Yen(mil(a, 10)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("普通預金", mil(a, 1190)), line("支払手数料", mil(a, 10))),
				side(line("売買目的有価証券", a), line("有価証券売却益", mil(a, 200))),
			)
		},
		Explanation: "売却価額と取得原価の差額が売却損益となります。売却手数料は「支払手数料」で処理します。",
	},
	{
		ID:   "journal/securities-sold-at-loss",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("保有するC社株式（売買目的有価証券、取得原価%s円）を%s円で売却し、代金は普通預金に振り込まれた。", Yen(a), Yen(mil(a, 850)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("普通預金", mil(a, 850)), line("有価証券売却損", mil(a, 150))),
				side(line("売買目的有価証券", a)),
			)
		},
		Explanation: "売却価額が取得原価を下回った場合、その差額を「有価証券売却損」として計上します。",
	},
	{
		ID:   "journal/time-deposit-opened",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("定期預金%s円を預け入れた。預入期間は1年、年利率2%%である。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("定期預金", a)), side(line("普通預金", a)))
		},
		Explanation: "定期預金への預け入れ時は、預金科目の振替のみ行います（利息は決算時または満期時に計上）。",
	},
	{
		ID:   "journal/time-deposit-interest-accrued",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算日（3月31日）において、定期預金%s円（預入日：1月1日、預入期間1年、年利率2%%）の利息の未収分を計上する。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("未収収益", mil(a, 5))), side(line("受取利息", mil(a, 5))))
		},
		Explanation: "決算日に未経過分の利息を「未収収益」として計上します（見越し）。計算：元金×2%×3ヶ月/12ヶ月。",
	},

	// Taxes and payroll.
	{
		ID:   "journal/revenue-stamps-and-postage",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("収入印紙%s円と郵便切手%s円を現金で購入し、ただちに使用した。", Yen(mil(a, 20)), Yen(mil(a, 10)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("租税公課", mil(a, 20)), line("通信費", mil(a, 10))),
				side(line("現金", mil(a, 30))),
			)
		},
		Explanation: "収入印紙は「租税公課」、切手は「通信費」で処理します。",
	},
	{
		ID:   "journal/property-tax-paid",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("固定資産税の納付書を受け取り、第1期分%s円を現金で納付した。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("租税公課", a)), side(line("現金", a)))
		},
		Explanation: "固定資産税、自動車税などは「租税公課」で処理します。",
	},
	{
		ID:   "journal/purchase-with-consumption-tax",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("商品%s円（税抜）を仕入れ、消費税10%%を含めた代金を掛けとした。（税抜方式）", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仕入", a), line("仮払消費税", mil(a, 100))),
				side(line("買掛金", mil(a, 1100))),
			)
		},
		Explanation: "税抜方式では、仕入時に支払った消費税を「仮払消費税」（資産）として処理します。",
	},
	{
		ID:   "journal/sale-with-consumption-tax",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("商品%s円（税抜）を売上げ、消費税10%%を含めた代金を掛けとした。（税抜方式）", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("売掛金", mil(a, 1100))),
				side(line("売上", a), line("仮受消費税", mil(a, 100))),
			)
		},
		Explanation: "税抜方式では、売上時に受け取った消費税を「仮受消費税」（負債）として処理します。",
	},
	{
		ID:   "journal/consumption-tax-settled",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算につき、消費税の納付額を確定した。当期の仮受消費税は%s円、仮払消費税は%s円であった。", Yen(mil(a, 1100)), Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仮受消費税", mil(a, 1100))),
				side(line("仮払消費税", a), line("未払消費税", mil(a, 100))),
			)
		},
		Explanation: "仮受消費税と仮払消費税を相殺し、差額（納付額）を「未払消費税」として計上します。",
	},
	{
		ID:   "journal/purchase-with-tax-and-freight",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("商品%s円（税抜）を仕入れ、代金は消費税10%%とともに掛けとした。なお、引取運賃%s円（税抜）を消費税とともに現金で支払った。（税抜方式）", Yen(a), Yen(mil(a, 50)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仕入", mil(a, 1050)), line("仮払消費税", mil(a, 105))),
				side(line("買掛金", mil(a, 1100)), line("現金", mil(a, 55))),
			)
		},
		Explanation: "商品仕入と引取運賃（付随費用）を合算して仕入原価とします。消費税は仮払消費税で処理します。",
	},
	{
		ID:   "journal/sale-with-tax-and-shipping-advance",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("商品%s円（税抜）を売り上げ、代金は消費税10%%とともに掛けとした。なお、先方負担の発送費%s円（消費税込み%s円）を立替払いし、現金で支払った。", Yen(a), Yen(mil(a, 20)), Yen(mil(a, 22)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("売掛金", mil(a, 1100)), line("立替金", mil(a, 22))),
				side(line("売上", a), line("仮受消費税", mil(a, 100)), line("現金", mil(a, 22))),
			)
		},
		Explanation: "売上取引と立替金を別々に処理します。発送費は先方負担のため立替金とします。",
	},
	{
		ID:   "journal/payroll-with-withholding",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("当月分の給料%s円から、所得税の源泉徴収額%s円と社会保険料%s円を差し引き、残額を現金で支払った。", Yen(a), Yen(mil(a, 50)), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("給料", a)),
				side(line("所得税預り金", mil(a, 50)), line("社会保険料預り金", mil(a, 100)), line("現金", mil(a, 850))),
			)
		},
		Explanation: "給料支給時に源泉徴収する所得税と社会保険料は「預り金」（負債）として処理します。",
	},
	{
		ID:   "journal/withholdings-remitted",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("従業員から預かっていた所得税%s円と社会保険料%s円を現金で納付した。なお、社会保険料のうち会社負担分は%s円である。", Yen(mil(a, 50)), Yen(mil(a, 100)), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("所得税預り金", mil(a, 50)), line("社会保険料預り金", mil(a, 100)), line("法定福利費", mil(a, 100))),
				side(line("現金", mil(a, 250))),
			)
		},
		Explanation: "預り金の納付時に、会社負担分の社会保険料は「法定福利費」として計上します。",
	},
	{
		ID:   "journal/payroll-full-deductions",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("当月分の給料総額%s円から、所得税%s円、住民税%s円、健康保険料%s円、厚生年金保険料%s円を差し引き、残額を普通預金から各人の口座に振り込んだ。", Yen(a), Yen(mil(a, 80)), Yen(mil(a, 60)), Yen(mil(a, 50)), Yen(mil(a, 90)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("給料", a)),
				side(
					line("所得税預り金", mil(a, 80)),
					line("住民税預り金", mil(a, 60)),
					line("社会保険料預り金", mil(a, 140)),
					line("普通預金", mil(a, 720)),
				),
			)
		},
		Explanation: "給料総額から各種控除を差し引いた手取額（72%）を支払います。社会保険料=健康保険5%+厚生年金9%=14%。",
	},

	// Closing and equity.
	{
		ID:   "journal/accrued-interest-reversed",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("期首に再振替仕訳を行う。前期末に計上した借入金の未払利息%s円を振り替える。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("未払費用", a)), side(line("支払利息", a)))
		},
		Explanation: "再振替仕訳です。前期末の逆仕訳を行い、当期の費用処理を正常化します。",
	},
	{
		ID:   "journal/allowance-topped-up",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算につき、売掛金の期末残高%s円に対して2%%の貸倒引当金を設定する。なお、貸倒引当金の残高は%s円ある。（差額補充法）", Yen(a), Yen(mil(a, 10)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("貸倒引当金繰入", mil(a, 10))), side(line("貸倒引当金", mil(a, 10))))
		},
		Explanation: "目標額(2%) - 前期残高(1%) = 繰入額(1%)。差額を繰り入れます。",
	},
	{
		ID:   "journal/shares-issued-at-incorporation",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("株式会社の設立にあたり、株式100株を1株%s円で発行し、全額の払込みを受け、当座預金とした。なお、資本金は会社法で認められる最低額とする。", Yen(a*10))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("当座預金", a*1000)),
				side(line("資本金", a*500), line("資本準備金", a*500)),
			)
		},
		Explanation: "払込金額の2分の1を超えない額は資本金に計上せず、資本準備金とすることができます。",
	},
	{
		ID:   "journal/dividend-declared",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("株主総会において、繰越利益剰余金を財源として配当金%s円を支払い、利益準備金%s円を積み立てることを決議した。", Yen(a), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("繰越利益剰余金", mil(a, 1100))),
				side(line("未払配当金", a), line("利益準備金", mil(a, 100))),
			)
		},
		Explanation: "純資産の減少（借方：繰越利益剰余金）と、未払配当金（負債）・利益準備金（純資産）の増加を記録します。",
	},
	{
		ID:   "journal/closing-depreciation-and-accrued-interest",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算日（3/31）において次の整理を行う。①建物（取得原価%s円、耐用年数30年、残存価額ゼロ、定額法、間接法）の減価償却、②借入金%s円（年利率4%%）の利息6ヶ月分の見越し計上。", Yen(a*240), Yen(a*120))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("減価償却費", a*8), line("支払利息", mil(a, 2400))),
				side(line("減価償却累計額", a*8), line("未払費用", mil(a, 2400))),
			)
		},
		Explanation: "①減価償却：取得原価÷30年。②利息見越し：借入金×4%×6/12。",
	},
	{
		ID:   "journal/closing-accrued-interest-and-prepaid-insurance",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算日（12/31）において次の整理を行う。①貸付金%s円（10/1貸付、年利率3%%）の利息3ヶ月分の見越し計上、②保険料%s円（4/1支払、1年分前払）の繰延べ処理。", Yen(a*60), Yen(mil(a, 1200)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("未収収益", mil(a, 450)), line("前払費用", mil(a, 300))),
				side(line("受取利息", mil(a, 450)), line("支払保険料", mil(a, 300))),
			)
		},
		Explanation: "①利息見越し：貸付金×3%×3/12。②保険料繰延べ：年額×3/12（1/1～3/31の3ヶ月分を翌期へ繰延）。",
	},
	{
		ID:   "journal/closing-inventory-and-allowance",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算日において次の整理を行う。①期末商品棚卸高%s円（期首商品は%s円）、②売掛金%s円と受取手形%s円に対し2%%の貸倒引当金を設定（前期末残高%s円、差額補充法）。", Yen(mil(a, 1500)), Yen(a), Yen(a*20), Yen(a*10), Yen(mil(a, 500)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仕入", a), line("繰越商品", mil(a, 1500)), line("貸倒引当金繰入", mil(a, 100))),
				side(line("繰越商品", a), line("仕入", mil(a, 1500)), line("貸倒引当金", mil(a, 100))),
			)
		},
		Explanation: "①商品：期首を仕入へ、期末を繰越商品へ振り替えます。②貸倒引当金：(20a+10a)×2%=0.6a、差額0.1aを繰り入れます。",
	},
	{
		ID:   "journal/closing-three-adjustments",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算日において次の整理を行う。①売掛金%s円と受取手形%s円に対し2%%の貸倒引当金を設定（前残高%s円、差額補充法）、②消耗品の期末実地棚卸高%s円（購入時費用処理）、③期末商品棚卸高%s円（期首商品は%s円）。", Yen(a*50), Yen(a*30), Yen(mil(a, 800)), Yen(mil(a, 300)), Yen(a*15), Yen(a*12))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("貸倒引当金繰入", mil(a, 800)), line("貯蔵品", mil(a, 300)), line("仕入", a*12), line("繰越商品", a*15)),
				side(line("貸倒引当金", mil(a, 800)), line("消耗品費", mil(a, 300)), line("繰越商品", a*12), line("仕入", a*15)),
			)
		},
		Explanation: "①(50a+30a)×2%=1.6a、前残高0.8aとの差額を繰入。②未使用の消耗品を貯蔵品へ。③期首商品を仕入へ、期末商品を繰越商品へ振り替えます。",
	},
	{
		ID:   "journal/closing-depreciation-prepaid-and-accrued",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("決算日において次の整理を行う。①車両運搬具（取得原価%s円、耐用年数6年、残存価額ゼロ、定額法、間接法）の減価償却、②保険料の前払分%s円の繰延べ、③家賃の未払分%s円の見越し計上。", Yen(a*24), Yen(mil(a, 400)), Yen(mil(a, 600)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("減価償却費", a*4), line("前払費用", mil(a, 400)), line("支払家賃", mil(a, 600))),
				side(line("減価償却累計額", a*4), line("支払保険料", mil(a, 400)), line("未払費用", mil(a, 600))),
			)
		},
		Explanation: "①減価償却：取得原価÷耐用年数。②前払費用：翌期分を繰延。③未払費用：当期分の未払を見越し計上。",
	},

	// Corrections and bad debts.
	{
		ID:   "journal/wages-misposted-corrected",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("%s円の給料支払いを、誤って「旅費交通費」として処理していたことが判明した。これを訂正する。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("給料", a)), side(line("旅費交通費", a)))
		},
		Explanation: "訂正仕訳は、誤った仕訳の逆仕訳と正しい仕訳を合成したものです。ここでは費用科目間の振替のみで済みます。",
	},
	{
		ID:   "journal/collection-understated-corrected",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("%s円の売掛金回収を、誤って%s円と記帳していたことが判明した。これを訂正する。", Yen(a), Yen(mil(a, 100)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("現金", mil(a, 900))), side(line("売掛金", mil(a, 900))))
		},
		Explanation: "金額の誤記の場合、不足分（正しい金額－誤った金額）を追加仕訳します。",
	},
	{
		ID:   "journal/bad-debt-covered-by-allowance",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する売掛金%s円が回収不能となった。なお、貸倒引当金の残高は%s円ある。", t, Yen(a), Yen(mil(a, 1500)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("貸倒引当金", a)), side(line("売掛金", a)))
		},
		Explanation: "貸倒引当金が設定されている場合、実際の貸倒れは引当金から取り崩します。",
	},
	{
		ID:   "journal/bad-debt-exceeds-allowance",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに対する売掛金%s円が回収不能となった。なお、貸倒引当金の残高は%s円である。", t, Yen(a), Yen(mil(a, 600)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("貸倒引当金", mil(a, 600)), line("貸倒損失", mil(a, 400))),
				side(line("売掛金", a)),
			)
		},
		Explanation: "貸倒額が引当金を超える場合、超過分を「貸倒損失」として計上します。",
	},
	{
		ID:   "journal/written-off-debt-recovered",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("過年度に貸倒処理した%sに対する売掛金%s円が回収された。代金は現金で受け取った。", t, Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("現金", a)), side(line("償却債権取立益", a)))
		},
		Explanation: "過去に貸倒処理した債権を回収した場合は「償却債権取立益」（収益）で処理します。",
	},

	// Overdrafts, cash over and short, loans.
	{
		ID:   "journal/check-issued-two-account-overdraft",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("当座預金の残高は%s円であるが、買掛金の支払いとして小切手%s円を振り出した。なお、銀行とは当座借越契約（限度額%s円）を締結しており、二勘定制で処理している。", Yen(mil(a, 800)), Yen(a), Yen(a*2))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("買掛金", a)),
				side(line("当座預金", mil(a, 800)), line("当座借越", mil(a, 200))),
			)
		},
		Explanation: "二勘定制では、当座預金の残高を超えた部分を「当座借越」勘定（負債）に計上します。",
	},
	{
		ID:   "journal/overdraft-then-deposit",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("当座預金の残高は%s円であったが、次の取引を行った。①買掛金%s円の支払いとして小切手を振り出した、②得意先から売掛金%s円の回収として小切手を受け取り、ただちに当座預金に預け入れた。なお、当座借越契約（二勘定制）を締結している。", Yen(mil(a, 600)), Yen(a), Yen(mil(a, 300)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("買掛金", a)),
				side(line("当座預金", mil(a, 600)), line("当座借越", mil(a, 100)), line("売掛金", mil(a, 300))),
			)
		},
		Explanation: "①支払で残高を超える0.4aが当座借越となり、②入金0.3aで借越が減少します。結果として当座借越は0.1aです。",
	},
	{
		ID:   "journal/cash-short-postage-found",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("現金の実際有高が帳簿残高より%s円不足していたため、現金過不足勘定で処理していたが、その後、通信費の記帳漏れであることが判明した。", Yen(mil(a, 2)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("通信費", mil(a, 2))), side(line("現金過不足", mil(a, 2))))
		},
		Explanation: "現金過不足の原因が判明した場合、該当する勘定科目に振り替えます。",
	},
	{
		ID:   "journal/cash-over-collection-found",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("現金の実際有高が帳簿残高より%s円多かったため、現金過不足勘定で処理していたが、その後、売掛金の回収の記帳漏れであることが判明した。", Yen(mil(a, 5)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("現金過不足", mil(a, 5))), side(line("売掛金", mil(a, 5))))
		},
		Explanation: "現金過剰の原因が売掛金回収の記帳漏れの場合、現金過不足を取り崩して売掛金を減額します。",
	},
	{
		ID:   "journal/credit-card-sale",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("商品%s円を販売し、代金はクレジットカードで受け取った。なお、信販会社への手数料は販売代金の3%%である。", Yen(a))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("クレジット売掛金", mil(a, 970)), line("支払手数料", mil(a, 30))),
				side(line("売上", a)),
			)
		},
		Explanation: "クレジット売上時に、手数料相当額を「支払手数料」として計上し、手取額を「クレジット売掛金」とします。",
	},
	{
		ID:   "journal/loan-made",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sに現金%s円を貸し付け、3ヶ月後に元金とともに利息（年利率4%%）を受け取る約束をした。", t, Yen(mil(a, 500)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(side(line("貸付金", mil(a, 500))), side(line("現金", mil(a, 500))))
		},
		Explanation: "貸付時は元本のみ記録します。利息は受取時または決算時に計上します。",
	},
	{
		ID:   "journal/loan-collected-with-interest",
		Kind: KindJournal,
		Text: func(a int64, t string) string {
			return fmt.Sprintf("%sへの貸付金%s円について、3ヶ月分の利息（年利率4%%）とともに元金を現金で受け取った。", t, Yen(mil(a, 500)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("現金", mil(a, 505))),
				side(line("貸付金", mil(a, 500)), line("受取利息", mil(a, 5))),
			)
		},
		Explanation: "貸付金の回収時に、元本と利息を区分して処理します。利息計算：元金×4%×3/12。",
	},
	{
		ID:   "journal/purchase-advance-and-supplies",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("次の取引を行った。①商品%s円（税抜）を仕入れ、代金は約束手形を振り出して支払った（税抜方式）、②従業員の出張旅費として概算額%s円を現金で渡した、③事務用消耗品%s円を購入し、代金は現金で支払った（購入時費用処理）。", Yen(a), Yen(mil(a, 100)), Yen(mil(a, 50)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仕入", a), line("仮払消費税", mil(a, 100)), line("仮払金", mil(a, 100)), line("消耗品費", mil(a, 50))),
				side(line("支払手形", mil(a, 1100)), line("現金", mil(a, 150))),
			)
		},
		Explanation: "①税抜方式のため仮払消費税を分けて計上し、支払手形は税込額。②仮払金：概算払い。③消耗品費：費用処理法。",
	},
	{
		ID:   "journal/purchase-part-cash-three-slip",
		Kind: KindJournal,
		Text: func(a int64, _ string) string {
			return fmt.Sprintf("3伝票制において、商品%s円を仕入れ、代金のうち%s円を現金で支払い、残額は掛けとした。この取引を仕訳しなさい。", Yen(a), Yen(mil(a, 300)))
		},
		Journal: func(a int64, _ string) JournalEntry {
			return journal(
				side(line("仕入", a)),
				side(line("現金", mil(a, 300)), line("買掛金", mil(a, 700))),
			)
		},
		Explanation: "3伝票制でも仕訳は通常通り行います。現金支払分は出金伝票、掛分は振替伝票で起票します。",
	},
}
