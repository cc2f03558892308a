package template

const StyleCSS = `
body > div {
  margin: 0 auto;
  padding: 20px;
  box-sizing: border-box;
  background-color: #fff;
  line-height: 1.6;
  text-align: justify;
  color: #333333;
}

h1 {
  text-align: center;
  font-size: 1.5em;
  margin: 2em auto;
  font-weight: bold;
  color: #2c3e50;
}

p {
  text-indent: 1.5em;
  margin: 0.6em 0;
  font-size: 1em;
}

nav ol {
  list-style: none;
  padding-left: 0;
}

nav li {
  margin: 0.4em 0;
}

div.cover {
  padding: 0;
  text-align: center;
}

div.cover img {
  max-width: 100%;
  max-height: 100%;
  height: auto;
}
`
